// Package sections resolves in-page section anchors.
package sections

// ID names a section of the page.
type ID string

const (
	About    ID = "about"
	Projects ID = "projects"
	Contact  ID = "contact"
)

// All returns the sections in page order.
func All() []ID {
	return []ID{About, Projects, Contact}
}

// Anchor is a rendered section the page can scroll to.
type Anchor struct {
	ID   ID
	Href string
}

// Navigate returns the anchor for id. Unknown ids report false and the
// caller does nothing.
func Navigate(id string) (Anchor, bool) {
	for _, s := range All() {
		if string(s) == id {
			return Anchor{ID: s, Href: "#" + id}, true
		}
	}
	return Anchor{}, false
}
