package model

// MembershipLevel is a customer's membership tier.
type MembershipLevel string

const (
	// MembershipRegular is the default membership tier.
	MembershipRegular MembershipLevel = "regular"
	// MembershipPremium grants priority shipping labels and the member
	// checkout discount.
	MembershipPremium MembershipLevel = "premium"
)

// Valid reports whether the membership level is one of the known tiers.
func (m MembershipLevel) Valid() bool {
	return m == MembershipRegular || m == MembershipPremium
}

// User is the customer on whose behalf a request runs. Immutable for the
// duration of a request.
//
// @Description Customer identity and membership tier
type User struct {
	ID UserID `json:"id" bson:"_id" example:"user-7"`
	// MembershipLevel is either "regular" or "premium"
	MembershipLevel MembershipLevel `json:"membership_level" bson:"membership_level" example:"premium" enums:"regular,premium"`
} // @name User

// IsPremium reports whether the user is on the premium tier.
func (u User) IsPremium() bool {
	return u.MembershipLevel == MembershipPremium
}
