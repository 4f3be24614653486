// Package tracking implements the tracking engine: link generation, click
// recording and redirect resolution.
package tracking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultStoreTimeout = 5 * time.Second

// Service is the tracking engine interface.
type Service interface {
	GenerateLink(affiliateID, campaignID uint, subID string) *Link
	RecordClick(ctx context.Context, input ClickInput) (*ClickResult, error)
}

type service struct {
	clicks     repositories.ClickRepository
	campaigns  repositories.CampaignRepository
	affiliates repositories.AffiliateRepository
	cache      RedirectCache
	config     Config
}

// NewService creates a tracking service. The cache is optional; without it
// every redirect resolution goes to the store.
func NewService(
	clicks repositories.ClickRepository,
	campaigns repositories.CampaignRepository,
	affiliates repositories.AffiliateRepository,
	cache RedirectCache,
	config Config,
) Service {
	if clicks == nil {
		panic("click repository is required")
	}
	if campaigns == nil {
		panic("campaign repository is required")
	}
	if affiliates == nil {
		panic("affiliate repository is required")
	}
	if config.TrackingDomain == "" {
		config.TrackingDomain = "https://track.rebelsrev.com"
	}
	if config.DefaultRedirectURL == "" {
		config.DefaultRedirectURL = "https://example-offer.com"
	}
	if config.StoreTimeout == 0 {
		config.StoreTimeout = DefaultStoreTimeout
	}

	return &service{
		clicks:     clicks,
		campaigns:  campaigns,
		affiliates: affiliates,
		cache:      cache,
		config:     config,
	}
}

// GenerateLink issues a fresh opaque tracking identifier and the URL that
// embeds the affiliate, campaign and optional sub ID. No persistence happens
// here.
func (s *service) GenerateLink(affiliateID, campaignID uint, subID string) *Link {
	trackingID := uuid.NewString()

	q := url.Values{}
	q.Set("aff", fmt.Sprintf("%d", affiliateID))
	q.Set("camp", fmt.Sprintf("%d", campaignID))
	q.Set("sub", subID)

	return &Link{
		TrackingID:  trackingID,
		TrackingURL: fmt.Sprintf("%s/t/%s?%s", s.config.TrackingDomain, trackingID, q.Encode()),
		AffiliateID: affiliateID,
		CampaignID:  campaignID,
		SubID:       subID,
		CreatedAt:   time.Now().UTC(),
	}
}

// RecordClick persists the visit and resolves where to send the visitor.
// The affiliate click counter is bumped best-effort; redirect resolution
// degrades to the configured fallback URL instead of failing the caller.
func (s *service) RecordClick(ctx context.Context, input ClickInput) (*ClickResult, error) {
	if input.TrackingID == "" || input.AffiliateID == 0 || input.CampaignID == 0 {
		return nil, ErrInvalidInput
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	click := &models.Click{
		TrackingID:  input.TrackingID,
		AffiliateID: input.AffiliateID,
		CampaignID:  input.CampaignID,
		SubID:       input.SubID,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
		Country:     input.Country,
		IsConverted: false,
		Revenue:     decimal.Zero,
		ClickedAt:   time.Now().UTC(),
	}
	if err := s.clicks.Create(storeCtx, click); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("failed to record click: %w", err)
	}

	// Best-effort counter; a lost increment under race is tolerable.
	if err := s.affiliates.IncrementClicks(storeCtx, input.AffiliateID); err != nil {
		log.Printf("click counter increment failed for affiliate %d: %v", input.AffiliateID, err)
	}

	return &ClickResult{
		Click:       click,
		RedirectURL: s.resolveRedirect(storeCtx, input.CampaignID),
	}, nil
}

// resolveRedirect finds the campaign's redirect URL, trying the cache first.
// Any miss or store failure falls back to the default URL so the visitor
// redirect is never blocked.
func (s *service) resolveRedirect(ctx context.Context, campaignID uint) string {
	if s.cache != nil {
		if cached, ok, err := s.cache.GetCampaignRedirect(ctx, campaignID); err == nil && ok && cached != "" {
			return cached
		}
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		log.Printf("redirect lookup failed for campaign %d: %v", campaignID, err)
		return s.config.DefaultRedirectURL
	}
	if campaign.RedirectURL == "" {
		log.Printf("campaign %d has no redirect URL, using fallback", campaignID)
		return s.config.DefaultRedirectURL
	}

	if s.cache != nil {
		if err := s.cache.SetCampaignRedirect(ctx, campaignID, campaign.RedirectURL); err != nil {
			log.Printf("failed to cache redirect for campaign %d: %v", campaignID, err)
		}
	}
	return campaign.RedirectURL
}
