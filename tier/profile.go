package tier

// MaxTrialSessions is how many demo sessions a trial grants.
const MaxTrialSessions = 2

// Profile is the slice of the user profile that gating needs.
type Profile struct {
	Tier              Tier `json:"subscription_tier" yaml:"tier"`
	TrialSessionsUsed int  `json:"trial_sessions_used" yaml:"trial_sessions_used"`
}

func (p Profile) TrialExpired() bool {
	return p.Tier == Trial && p.TrialSessionsUsed >= MaxTrialSessions
}

func (p Profile) TrialSessionsLeft() int {
	if p.Tier != Trial {
		return 0
	}
	left := MaxTrialSessions - p.TrialSessionsUsed
	if left < 0 {
		return 0
	}
	return left
}

// Allows is IsFeatureEnabled with the trial limit applied: an expired trial
// unlocks nothing.
func (p Profile) Allows(f Feature) bool {
	if p.TrialExpired() {
		return false
	}
	return IsFeatureEnabled(p.Tier, f)
}
