package scanner

import (
	"regexp"

	"github.com/dotsentry/dotsentry/internal/types"
)

// Pattern is one entry in the secret pattern bank.
type Pattern struct {
	ID         string
	Name       string
	Confidence types.Confidence
	RevokeURL  string
	re         *regexp.Regexp

	// group, when nonzero, is the submatch reported as the secret. Used by
	// context-gated patterns whose expression also matches surrounding text.
	group int
}

// Regexp exposes the compiled expression, mainly for the patterns command.
func (p Pattern) Regexp() *regexp.Regexp { return p.re }

// bank holds every known secret format, ordered: when two patterns could claim
// the same span, the earlier one wins. Built once at init, never mutated.
var bank = []Pattern{
	{
		ID: "aws_access_key", Name: "AWS Access Key",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://console.aws.amazon.com/iam",
		re:         regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
	},
	{
		// 40 base64-ish chars is far too broad on its own; require
		// secret-key context on the same line.
		ID: "aws_secret_key", Name: "AWS Secret Key",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://console.aws.amazon.com/iam",
		re:         regexp.MustCompile(`(?i)(aws_secret_access_key|aws_secret_key|secretKey)["'\s:=]+([A-Za-z0-9/+=]{40})`),
		group:      2,
	},
	{
		ID: "stripe_secret_live", Name: "Stripe Secret Key (live)",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://dashboard.stripe.com/apikeys",
		re:         regexp.MustCompile(`\bsk_live_[0-9a-zA-Z]{24,}\b`),
	},
	{
		ID: "stripe_secret_test", Name: "Stripe Secret Key (test)",
		Confidence: types.ConfMedium,
		RevokeURL:  "https://dashboard.stripe.com/apikeys",
		re:         regexp.MustCompile(`\bsk_test_[0-9a-zA-Z]{24,}\b`),
	},
	{
		ID: "github_pat", Name: "GitHub Personal Access Token",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://github.com/settings/tokens",
		re:         regexp.MustCompile(`\bghp_[A-Za-z0-9]{36,40}\b`),
	},
	{
		ID: "github_oauth", Name: "GitHub OAuth Token",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://github.com/settings/tokens",
		re:         regexp.MustCompile(`\bgho_[A-Za-z0-9]{36,40}\b`),
	},
	{
		ID: "github_app", Name: "GitHub App Token",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://github.com/settings/tokens",
		re:         regexp.MustCompile(`\b(?:ghu|ghs)_[A-Za-z0-9]{36,40}\b`),
	},
	{
		ID: "gitlab_pat", Name: "GitLab Personal Access Token",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://gitlab.com/-/user_settings/personal_access_tokens",
		re:         regexp.MustCompile(`\bglpat-[A-Za-z0-9_\-]{20,}\b`),
	},
	{
		ID: "anthropic_api_key", Name: "Anthropic API Key",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://console.anthropic.com/settings/keys",
		re:         regexp.MustCompile(`\bsk-ant-api[0-9]{2}-[A-Za-z0-9_\-]{80,120}\b`),
	},
	{
		ID: "openai_api_key", Name: "OpenAI API Key",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://platform.openai.com/api-keys",
		re:         regexp.MustCompile(`\bsk-[A-Za-z0-9]{48}\b`),
	},
	{
		ID: "google_api_key", Name: "Google API Key",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://console.cloud.google.com/apis/credentials",
		re:         regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{35}\b`),
	},
	{
		ID: "slack_token", Name: "Slack Token",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://api.slack.com/apps",
		re:         regexp.MustCompile(`\bxox[baprs]-[0-9A-Za-z\-]{10,}\b`),
	},
	{
		ID: "sendgrid_api_key", Name: "SendGrid API Key",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://app.sendgrid.com/settings/api_keys",
		re:         regexp.MustCompile(`\bSG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}\b`),
	},
	{
		ID: "npm_token", Name: "npm Access Token",
		Confidence: types.ConfHigh,
		RevokeURL:  "https://www.npmjs.com/settings/~/tokens",
		re:         regexp.MustCompile(`\bnpm_[A-Za-z0-9]{36}\b`),
	},
	{
		ID: "jwt", Name: "JSON Web Token",
		Confidence: types.ConfMedium,
		re:         regexp.MustCompile(`\beyJ[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-]{10,}\b`),
	},
	{
		ID: "private_key_block", Name: "Private Key",
		Confidence: types.ConfHigh,
		re:         regexp.MustCompile(`-----BEGIN [A-Z ]+PRIVATE KEY-----`),
	},
}

// Patterns returns the pattern bank. Callers must treat it as read-only.
func Patterns() []Pattern {
	return bank
}
