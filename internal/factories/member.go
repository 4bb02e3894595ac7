package factories

// MemberProfile holds generated registration details; the member id itself
// comes from the restaurant's registration flow.
type MemberProfile struct {
	Name  string
	Phone string
}

type MemberFactory struct{}

func (mf *MemberFactory) CreateProfile() MemberProfile {
	return MemberProfile{
		Name:  fake.Person().Name(),
		Phone: fake.Phone().Number(),
	}
}
