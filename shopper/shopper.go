// Package shopper keeps a visitor's storefront state in their session: saved
// measurement profiles, the shopping bag and a one-shot flash notification.
//
// Every helper replaces the stored slice instead of appending to it in place,
// since session copies share their values.
package shopper

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/pkg/session"
)

const (
	profilesKey = "shopper.profiles"
	bagKey      = "shopper.bag"
	flashKey    = "shopper.flash"
)

var (
	ErrProfileNotFound = errors.New("shopper: measurement profile not found")
	ErrSeededProfile   = errors.New("shopper: seeded profiles cannot be deleted")
	ErrEmptyName       = errors.New("shopper: profile name is empty")
)

// Toast variants.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Current returns the session attached by session.Manager.EnsureSession.
func Current(ctx context.Context) (*session.Session, error) {
	s, ok := session.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("shopper: %w", session.ErrNoSessionInContext)
	}
	return s, nil
}

// Toast is a transient notification. A toast queued with SetFlash is shown once
// on the next full page render.
type Toast struct {
	Variant     string
	Title       string
	Description string
}

// Profiles lists the seeded profiles followed by the visitor's saved ones.
func Profiles(s *session.Session, cat *catalog.Catalog) []catalog.MeasurementProfile {
	saved := savedProfiles(s)
	out := make([]catalog.MeasurementProfile, 0, len(cat.Profiles)+len(saved))
	out = append(out, cat.Profiles...)
	return append(out, saved...)
}

// SaveProfile stores a new named profile and returns it.
func SaveProfile(s *session.Session, name string, m catalog.Measurements) (catalog.MeasurementProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.MeasurementProfile{}, ErrEmptyName
	}

	p := catalog.MeasurementProfile{ID: uuid.NewString(), Name: name, Measurements: m}
	s.Set(profilesKey, append(slices.Clone(savedProfiles(s)), p))
	return p, nil
}

// DeleteProfile removes a saved profile. Seeded profiles are refused.
func DeleteProfile(s *session.Session, cat *catalog.Catalog, id string) error {
	if _, ok := cat.Profile(id); ok {
		return ErrSeededProfile
	}

	saved := savedProfiles(s)
	i := slices.IndexFunc(saved, func(p catalog.MeasurementProfile) bool { return p.ID == id })
	if i < 0 {
		return ErrProfileNotFound
	}
	s.Set(profilesKey, slices.Delete(slices.Clone(saved), i, i+1))
	return nil
}

func savedProfiles(s *session.Session) []catalog.MeasurementProfile {
	p, _ := session.Value[[]catalog.MeasurementProfile](s, profilesKey)
	return p
}

// Bag returns the items added in the studio.
func Bag(s *session.Session) []catalog.LineItem {
	bag, _ := session.Value[[]catalog.LineItem](s, bagKey)
	return bag
}

// AddToBag appends an item to the bag.
func AddToBag(s *session.Session, item catalog.LineItem) {
	s.Set(bagKey, append(slices.Clone(Bag(s)), item))
}

// ClearBag empties the bag.
func ClearBag(s *session.Session) {
	s.Delete(bagKey)
}

// SetFlash queues a notification, replacing any pending one.
func SetFlash(s *session.Session, t Toast) {
	s.Set(flashKey, t)
}

// PopFlash returns the pending notification and clears it.
func PopFlash(s *session.Session) (Toast, bool) {
	return session.Pop[Toast](s, flashKey)
}
