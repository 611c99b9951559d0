package service

import "context"

// MembershipReader is the slice of the store the access policy needs. Both
// checks are indexed existence queries on the join relation; the policy
// never loads collections into memory.
type MembershipReader interface {
	IsMember(ctx context.Context, userID, orgID string) (bool, error)
	ShareOrganisation(ctx context.Context, userA, userB string) (bool, error)
}

// AccessPolicy decides whether a requester may see or change a record.
// Membership and self-identity are the only inputs; there is no owner or
// admin tier.
type AccessPolicy struct{}

// CanViewUser reports whether requester may view target: true iff they are
// the same user or share at least one organisation.
func (AccessPolicy) CanViewUser(ctx context.Context, m MembershipReader, requesterID, targetID string) (bool, error) {
	if requesterID == targetID {
		return true, nil
	}
	return m.ShareOrganisation(ctx, requesterID, targetID)
}

// CanViewOrganisation reports whether requester may view the organisation:
// membership is both necessary and sufficient.
func (AccessPolicy) CanViewOrganisation(ctx context.Context, m MembershipReader, requesterID, orgID string) (bool, error) {
	return m.IsMember(ctx, requesterID, orgID)
}

// CanModifyOrganisation uses the identical rule as CanViewOrganisation.
// There is no separate write tier.
func (p AccessPolicy) CanModifyOrganisation(ctx context.Context, m MembershipReader, requesterID, orgID string) (bool, error) {
	return p.CanViewOrganisation(ctx, m, requesterID, orgID)
}
