package domain

// DefaultView is shown when the location hash is empty.
const DefaultView = "home"

// ViewState is the explicit navigation state of the page: which content tab is
// visible and whether the collapsible menu is open.
type ViewState struct {
	Current      string `json:"current"`
	MenuExpanded bool   `json:"menu_expanded"`
}

// NavEventType defines what happened in the host UI.
type NavEventType string

const (
	NavHashChanged  NavEventType = "hash_changed"
	NavToggleMenu   NavEventType = "toggle_menu"
	NavCollapseMenu NavEventType = "collapse_menu"
)

// NavEvent is an external event fed to the navigation machine.
type NavEvent struct {
	Type NavEventType `json:"type"`
	Hash string       `json:"hash,omitempty"` // Only for NavHashChanged, with or without the leading '#'
}

// HashChanged builds a NavHashChanged event.
func HashChanged(hash string) NavEvent {
	return NavEvent{Type: NavHashChanged, Hash: hash}
}
