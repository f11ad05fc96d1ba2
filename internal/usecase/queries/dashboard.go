package queries

import (
	"context"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/offer"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const dashboardRecentLimit = 5

// DashboardView carries exactly one role section.
type DashboardView struct {
	Role       string               `json:"role"`
	Student    *StudentDashboard    `json:"student,omitempty"`
	Advertiser *AdvertiserDashboard `json:"advertiser,omitempty"`
	Moderator  *ModeratorDashboard  `json:"moderator,omitempty"`
	Admin      *AdminDashboard      `json:"admin,omitempty"`
}

type StudentDashboard struct {
	RecentBookings []*BookingView   `json:"recent_bookings"`
	Favourites     []*FavouriteItem `json:"favourites"`
	UnreadMessages int64            `json:"unread_messages"`
	TotalBookings  int64            `json:"total_bookings"`
}

type AdvertiserDashboard struct {
	OfferCounts    AdvertiserOfferCounts `json:"offer_counts"`
	RecentOffers   []*OfferListItem      `json:"recent_offers"`
	RecentBookings []*BookingView        `json:"recent_bookings"`
	UnreadMessages int64                 `json:"unread_messages"`
}

type ModeratorDashboard struct {
	PendingOffers  []*OfferListItem `json:"pending_offers"`
	UnreadMessages int64            `json:"unread_messages"`
}

type AdminDashboard struct {
	PendingOfferCount int64        `json:"pending_offer_count"`
	BookingStats      BookingStats `json:"booking_stats"`
	TotalUsers        int64        `json:"total_users"`
	TotalOffers       int64        `json:"total_offers"`
}

type DashboardQueries interface {
	Dashboard(ctx context.Context, actor authz.Actor) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	users      UserReadStore
	offers     OfferReadStore
	bookings   BookingReadStore
	favourites FavouriteReadStore
	messages   MessageReadStore
	clock      clock.Clock
}

func NewDashboardQueries(
	users UserReadStore,
	offers OfferReadStore,
	bookings BookingReadStore,
	favourites FavouriteReadStore,
	messages MessageReadStore,
	clk clock.Clock,
) DashboardQueries {
	return &dashboardQueriesImpl{
		users:      users,
		offers:     offers,
		bookings:   bookings,
		favourites: favourites,
		messages:   messages,
		clock:      clk,
	}
}

func (q *dashboardQueriesImpl) Dashboard(ctx context.Context, actor authz.Actor) (*DashboardView, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	view := &DashboardView{Role: actor.Role.String()}

	var err error
	switch actor.Role {
	case user.RoleStudent:
		view.Student, err = q.student(ctx, actor)
	case user.RoleAdvertiser:
		view.Advertiser, err = q.advertiser(ctx, actor)
	case user.RoleModerator:
		view.Moderator, err = q.moderator(ctx, actor)
	case user.RoleAdmin:
		view.Admin, err = q.admin(ctx)
	}
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *dashboardQueriesImpl) student(ctx context.Context, actor authz.Actor) (*StudentDashboard, error) {
	d := &StudentDashboard{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.RecentBookings, err = q.bookings.ByStudent(ctx, actor.ID, nil, dashboardRecentLimit)
		return err
	})
	g.Go(func() (err error) {
		d.Favourites, err = q.favourites.ByStudent(ctx, actor.ID, dashboardRecentLimit)
		return err
	})
	g.Go(func() (err error) {
		d.UnreadMessages, err = q.messages.UnreadCount(ctx, actor.ID)
		return err
	})
	g.Go(func() (err error) {
		d.TotalBookings, err = q.bookings.CountByStudent(ctx, actor.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, f := range d.Favourites {
		fillAvailability(&f.Offer, now)
	}
	return d, nil
}

func (q *dashboardQueriesImpl) advertiser(ctx context.Context, actor authz.Actor) (*AdvertiserDashboard, error) {
	d := &AdvertiserDashboard{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := q.offers.AdvertiserCounts(ctx, actor.ID)
		if err != nil {
			return err
		}
		d.OfferCounts = *counts
		return nil
	})
	g.Go(func() (err error) {
		d.RecentOffers, err = q.offers.ByAdvertiser(ctx, actor.ID, dashboardRecentLimit)
		return err
	})
	g.Go(func() (err error) {
		d.RecentBookings, err = q.bookings.ByAdvertiser(ctx, actor.ID, nil, nil, dashboardRecentLimit)
		return err
	})
	g.Go(func() (err error) {
		d.UnreadMessages, err = q.messages.UnreadCount(ctx, actor.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, o := range d.RecentOffers {
		fillAvailability(o, now)
	}
	return d, nil
}

func (q *dashboardQueriesImpl) moderator(ctx context.Context, actor authz.Actor) (*ModeratorDashboard, error) {
	d := &ModeratorDashboard{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.PendingOffers, err = q.offers.ByStatus(ctx, offer.StatusPending.String(), DefaultListLimit)
		return err
	})
	g.Go(func() (err error) {
		d.UnreadMessages, err = q.messages.UnreadCount(ctx, actor.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

func (q *dashboardQueriesImpl) admin(ctx context.Context) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	pending := offer.StatusPending.String()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.PendingOfferCount, err = q.offers.CountByStatus(ctx, &pending)
		return err
	})
	g.Go(func() error {
		stats, err := q.bookings.Stats(ctx, nil)
		if err != nil {
			return err
		}
		d.BookingStats = *stats
		return nil
	})
	g.Go(func() (err error) {
		d.TotalUsers, err = q.users.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.TotalOffers, err = q.offers.CountByStatus(ctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
