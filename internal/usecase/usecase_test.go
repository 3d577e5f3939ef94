package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"teodity/internal/adapter/repository"
	"teodity/internal/domain/entity"
	domainrepo "teodity/internal/domain/repository"
)

type sentMail struct {
	kind string
	to   string
}

type recordingNotifier struct {
	sent []sentMail
}

func (n *recordingNotifier) ProductSold(buyerMail, sellerMail, productName string, price float64) {
	n.sent = append(n.sent, sentMail{"sold", buyerMail}, sentMail{"sold", sellerMail})
}

func (n *recordingNotifier) Outbid(bidderMail, productName string, newBidAmount float64) {
	n.sent = append(n.sent, sentMail{"outbid", bidderMail})
}

func (n *recordingNotifier) AuctionWon(winnerMail, productName string, finalPrice float64) {
	n.sent = append(n.sent, sentMail{"won", winnerMail})
}

func (n *recordingNotifier) ReportApproved(reporterMail, reportedUsername string) {
	n.sent = append(n.sent, sentMail{"report-approved", reporterMail})
}

func (n *recordingNotifier) ReportRejected(reporterMail, reportedUsername, adminComment string) {
	n.sent = append(n.sent, sentMail{"report-rejected", reporterMail})
}

func (n *recordingNotifier) AccountBlocked(userMail, username string) {
	n.sent = append(n.sent, sentMail{"blocked", userMail})
}

func (n *recordingNotifier) count(kind string) int {
	c := 0
	for _, m := range n.sent {
		if m.kind == kind {
			c++
		}
	}
	return c
}

type memFileStore struct {
	saves   int
	removed []string
}

func (m *memFileStore) Save(src io.Reader, originalName string) (string, error) {
	io.Copy(io.Discard, src)
	m.saves++
	return fmt.Sprintf("stored-%d-%s", m.saves, originalName), nil
}

func (m *memFileStore) Remove(name string) error {
	m.removed = append(m.removed, name)
	return nil
}

type fixture struct {
	users         domainrepo.UserRepository
	products      domainrepo.ProductRepository
	categories    domainrepo.CategoryRepository
	reviews       domainrepo.ReviewRepository
	reports       domainrepo.ReportRepository
	cancellations domainrepo.CancellationRepository

	notifier *recordingNotifier
	store    *memFileStore

	productUC    *ProductUseCase
	reviewUC     *ReviewUseCase
	reportUC     *ReportUseCase
	suspiciousUC *SuspiciousUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	users, err := repository.NewJSONUserRepository(dir)
	require.NoError(t, err)
	products, err := repository.NewJSONProductRepository(dir)
	require.NoError(t, err)
	categories, err := repository.NewJSONCategoryRepository(dir)
	require.NoError(t, err)
	reviews, err := repository.NewJSONReviewRepository(dir)
	require.NoError(t, err)
	reports, err := repository.NewJSONReportRepository(dir)
	require.NoError(t, err)
	cancellations, err := repository.NewJSONCancellationRepository(dir)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	store := &memFileStore{}

	return &fixture{
		users:         users,
		products:      products,
		categories:    categories,
		reviews:       reviews,
		reports:       reports,
		cancellations: cancellations,
		notifier:      notifier,
		store:         store,
		productUC:     NewProductUseCase(products, users, categories, cancellations, store, notifier),
		reviewUC:      NewReviewUseCase(reviews, users, products),
		reportUC:      NewReportUseCase(reports, users, products, notifier),
		suspiciousUC:  NewSuspiciousUseCase(cancellations, users),
	}
}

func (f *fixture) seedUser(t *testing.T, username, role string) *entity.User {
	t.Helper()
	user := &entity.User{
		Name:     "Test",
		Surname:  "User",
		Username: username,
		Mail:     username + "@example.com",
		Password: "hash",
		Image:    "default.png",
		Role:     role,
		Products: []int{},
		Reviews:  []int{},
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *fixture) seedCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	category := &entity.Category{Name: name}
	require.NoError(t, f.categories.Create(context.Background(), category))
	return category
}

func (f *fixture) seedProduct(t *testing.T, p *entity.Product) *entity.Product {
	t.Helper()
	if p.Status == "" {
		p.Status = entity.StatusStarted
	}
	if p.Images == nil {
		p.Images = []string{entity.PlaceholderImage}
	}
	if p.Offers == nil {
		p.Offers = []entity.Offer{}
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

// seedSoldDeal records a completed transaction between a seller and a
// buyer so review and report guards pass.
func (f *fixture) seedSoldDeal(t *testing.T, sellerID, buyerID int) *entity.Product {
	t.Helper()
	return f.seedProduct(t, &entity.Product{
		Name:     "Settled deal",
		Price:    100,
		Category: "Misc",
		Type:     entity.TypeFixed,
		Seller:   sellerID,
		Buyer:    buyerID,
		Status:   entity.StatusSold,
	})
}
