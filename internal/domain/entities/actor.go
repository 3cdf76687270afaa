package entities

type Role string

const (
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// Actor is the caller identity supplied by the auth provider.
//
// An admin may also work on the floor; ActingAsWorker tells which capacity the
// request is made in.
type Actor struct {
	OperatorID     string
	Role           Role
	ActingAsWorker bool
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanWork reports whether the actor may run timers in its own name.
func (a Actor) CanWork() bool {
	if a.OperatorID == "" {
		return false
	}
	return a.Role == RoleOperator || (a.Role == RoleAdmin && a.ActingAsWorker)
}

// CanControl reports whether the actor may transition the given task.
func (a Actor) CanControl(t Task) bool {
	if a.IsAdmin() {
		return true
	}
	return a.OperatorID != "" && a.OperatorID == t.OperatorID
}
