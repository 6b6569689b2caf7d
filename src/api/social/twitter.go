package social

import (
	"context"
	"errors"
)

// Twitter is a placeholder channel: API posting is disabled and results are
// shared manually. Kept registered so requests report a clear outcome.
type Twitter struct{}

func NewTwitter() *Twitter { return &Twitter{} }

func (t *Twitter) Name() string { return "twitter" }

func (t *Twitter) Post(ctx context.Context, post Post) (string, error) {
	return "", errors.New("twitter posting is disabled, use manual sharing instead")
}
