package user

type Role string

const (
	RoleOperator  Role = "operator"
	RoleDeveloper Role = "developer"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleOperator:  1,
	RoleDeveloper: 2,
	RoleAdmin:     3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank below everything.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	if !ok {
		return false
	}
	want, ok := roleLevels[min]
	return ok && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
