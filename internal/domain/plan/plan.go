// Package plan maps subscription tiers to the features they unlock.
package plan

const (
	Starter = "starter"
	Pro     = "pro"
	Elite   = "elite"
)

// Unlimited marks a quota with no monthly cap.
const Unlimited = -1

// Features describes what a tier may do. ChatModel is empty for tiers
// that bypass the hosted chat model entirely.
type Features struct {
	ChatModel   string
	LogoAllowed bool
	LogoQuota   int
	CustomAI    bool
}

// FeaturesFor resolves a tier tag to its feature set. Unknown or empty
// tags get starter features.
func FeaturesFor(tier, defaultChatModel string, proQuota int) Features {
	switch tier {
	case Pro:
		return Features{
			ChatModel:   defaultChatModel,
			LogoAllowed: true,
			LogoQuota:   proQuota,
		}
	case Elite:
		return Features{
			LogoAllowed: true,
			LogoQuota:   Unlimited,
			CustomAI:    true,
		}
	default:
		return Features{
			ChatModel:   defaultChatModel,
			LogoAllowed: false,
			LogoQuota:   0,
		}
	}
}
