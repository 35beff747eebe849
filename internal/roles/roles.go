// Package roles answers the two capability questions the tracker needs
// from the surrounding auth layer: may this role see every order, and may
// it modify orders it does not own.
package roles

const (
	Admin   = "admin"
	Manager = "manager"
	Viewer  = "viewer"
	User    = "user"
)

func CanViewAll(role string) bool {
	switch role {
	case Admin, Manager, Viewer:
		return true
	}
	return false
}

func CanEdit(role string) bool {
	switch role {
	case Admin, Manager:
		return true
	}
	return false
}
