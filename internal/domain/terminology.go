package domain

// Terminology is the set of words a tenant uses to describe itself. Funds,
// parishes and volunteer movements each phrase their widgets differently.
type Terminology struct {
	OrgSingular    string `json:"org_singular"`
	OrgGenitive    string `json:"org_genitive"`
	ActionSupport  string `json:"action_support"`
	MemberSingular string `json:"member_singular"`
	MemberPlural   string `json:"member_plural"`
}
