package account

// Tier determines the privilege flags an account starts with.
type Tier string

const (
	TierUser      Tier = "user"
	TierStaff     Tier = "staff"
	TierSuperuser Tier = "superuser"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierUser, TierStaff, TierSuperuser:
		return true
	default:
		return false
	}
}

func NewTier(s string) (Tier, error) {
	tier := Tier(s)
	if !tier.IsValid() {
		return "", ErrInvalidTier
	}
	return tier, nil
}
