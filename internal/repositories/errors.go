package repositories

import "errors"

// Repository errors.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrClickNotFound     = errors.New("click not found")
)
