package model

const (
	EffectAllow = "allow"
	EffectDeny  = "deny"
)

type AccessDecision struct {
	Effect  string   `json:"effect"`
	Reason  string   `json:"reason,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

func (d *AccessDecision) Allowed() bool {
	return d != nil && d.Effect == EffectAllow
}
