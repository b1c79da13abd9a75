package catalog

// Privilege is a (table, privilege) pair recorded against a user. It is
// bookkeeping only, no enforcement happens anywhere in the front end.
type Privilege struct {
	Table  string
	Action string
}

// User is a registered user with its granted privileges in grant order.
type User struct {
	Name     string
	Password string
	Grants   []Privilege
}

// HasGrant reports whether the user already holds the (table, action)
// pair.
func (u *User) HasGrant(table string, action string) bool {
	for _, g := range u.Grants {
		if g.Table == table && g.Action == action {
			return true
		}
	}
	return false
}

// Users holds the user table for a run.
type Users struct {
	users map[string]*User
	// names preserves user creation order for deterministic output.
	names []string
}

func NewUsers() *Users {
	return &Users{users: map[string]*User{}}
}

// Create registers a user with an empty grant set. Uniqueness of the
// username is the caller's check via Exists.
func (u *Users) Create(name string, password string) {
	if _, ok := u.users[name]; !ok {
		u.names = append(u.names, name)
	}
	u.users[name] = &User{Name: name, Password: password}
}

func (u *Users) Exists(name string) bool {
	_, ok := u.users[name]
	return ok
}

func (u *Users) Get(name string) (*User, bool) {
	user, ok := u.users[name]
	return user, ok
}

// Grant adds the (table, action) pair to the user's grant set. It
// returns false without duplicating the entry when the pair is already
// held, making re-grants idempotent.
func (u *Users) Grant(name string, table string, action string) bool {
	user, ok := u.users[name]
	if !ok {
		return false
	}
	if user.HasGrant(table, action) {
		return false
	}
	user.Grants = append(user.Grants, Privilege{Table: table, Action: action})
	return true
}

// Names returns usernames in creation order.
func (u *Users) Names() []string {
	return u.names
}
