package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/internal/repository/memory"
	"rrdesigns-backend/internal/usecase"
	"rrdesigns-backend/pkg/apperror"
	"rrdesigns-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMailer records every dispatch attempt
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

var settings = usecase.MailSettings{
	StudioName:     "RR Designs",
	FromAddress:    "relay@rrdesigns.in",
	ReceivingEmail: "studio@rrdesigns.in",
}

func newSubmissionUC(m *MockMailer) domain.SubmissionUsecase {
	return usecase.NewSubmissionUsecase(m, validation.New(), settings)
}

// captureSend expects exactly one successful send and returns the message.
func captureSend(m *MockMailer) *domain.EmailMessage {
	var sent domain.EmailMessage
	m.On("Send", mock.Anything, mock.AnythingOfType("*domain.EmailMessage")).Return(nil).Once().Run(func(args mock.Arguments) {
		sent = *args.Get(1).(*domain.EmailMessage)
	})
	return &sent
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should send with placeholders for absent optional fields", func(t *testing.T) {
		m := new(MockMailer)
		sent := captureSend(m)

		err := newSubmissionUC(m).SubmitContact(context.Background(), &domain.ContactRequest{
			Name: "Asha", Email: "asha@x.com", Phone: "+911234567890",
		})
		require.NoError(t, err)
		m.AssertExpectations(t)

		assert.Equal(t, "New Contact Form Submission from Asha", sent.Subject)
		assert.Equal(t, "RR Designs Contact Form", sent.FromName)
		assert.Equal(t, "relay@rrdesigns.in", sent.FromAddress)
		assert.Equal(t, "studio@rrdesigns.in", sent.ToAddress)
		assert.Equal(t, "asha@x.com", sent.ReplyTo)
		assert.Contains(t, sent.TextBody, "Name: Asha")
		assert.Contains(t, sent.TextBody, "Email: asha@x.com")
		assert.Contains(t, sent.TextBody, "Phone: +911234567890")
		assert.Contains(t, sent.TextBody, "Project Type: Not specified")
		assert.Contains(t, sent.TextBody, "Timeline: Not specified")
		assert.NotContains(t, sent.TextBody, "Message:")
	})

	t.Run("Should include optional fields when present", func(t *testing.T) {
		m := new(MockMailer)
		sent := captureSend(m)

		err := newSubmissionUC(m).SubmitContact(context.Background(), &domain.ContactRequest{
			Name: "Asha", Email: "asha@x.com", Phone: "1",
			ProjectType: "Residential", Timeline: "1-3 months", Message: "Living room refresh",
		})
		require.NoError(t, err)

		assert.Contains(t, sent.TextBody, "Project Type: Residential")
		assert.Contains(t, sent.TextBody, "Timeline: 1-3 months")
		assert.Contains(t, sent.TextBody, "Message:\nLiving room refresh")
		assert.Contains(t, sent.HTMLBody, "Living room refresh")
	})

	t.Run("Should reject missing required fields without sending", func(t *testing.T) {
		cases := map[string]*domain.ContactRequest{
			"no name":          {Email: "a@x.com", Phone: "1"},
			"no email":         {Name: "A", Phone: "1"},
			"no phone":         {Name: "A", Email: "a@x.com"},
			"whitespace phone": {Name: "A", Email: "a@x.com", Phone: "   "},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				m := new(MockMailer)
				err := newSubmissionUC(m).SubmitContact(context.Background(), req)
				assertAppError(t, err, http.StatusBadRequest, "Name, email, and phone are required")
				m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Should hide transport errors behind the generic message", func(t *testing.T) {
		m := new(MockMailer)
		m.On("Send", mock.Anything, mock.Anything).Return(errors.New("535 auth failed for relay@rrdesigns.in:hunter2")).Once()

		err := newSubmissionUC(m).SubmitContact(context.Background(), &domain.ContactRequest{
			Name: "Asha", Email: "asha@x.com", Phone: "1",
		})
		assertAppError(t, err, http.StatusInternalServerError, "Failed to send email. Please try again later.")
		assert.NotContains(t, err.Error(), "hunter2")
		m.AssertNumberOfCalls(t, "Send", 1)
	})
}

func TestSubmitPricingQuote(t *testing.T) {
	t.Run("Should render quote figures or N/A", func(t *testing.T) {
		m := new(MockMailer)
		sent := captureSend(m)

		err := newSubmissionUC(m).SubmitPricingQuote(context.Background(), &domain.PricingRequest{
			Name: "Ravi", Email: "ravi@x.com", Phone: "777",
			SquareFeet: "1500", Tier: "Luxury",
		})
		require.NoError(t, err)

		assert.Equal(t, "New Quote Request from Ravi", sent.Subject)
		assert.Equal(t, "RR Designs Quote Request", sent.FromName)
		assert.Equal(t, "ravi@x.com", sent.ReplyTo)
		assert.Contains(t, sent.TextBody, "Project Type: Not specified")
		assert.Contains(t, sent.TextBody, "Square Feet: 1500")
		assert.Contains(t, sent.TextBody, "Design Tier: Luxury")
		assert.Contains(t, sent.TextBody, "Estimated Quote: N/A")
		assert.NotContains(t, sent.TextBody, "Project Details:")
	})

	t.Run("Should reject missing phone without sending", func(t *testing.T) {
		m := new(MockMailer)
		err := newSubmissionUC(m).SubmitPricingQuote(context.Background(), &domain.PricingRequest{
			Name: "Ravi", Email: "ravi@x.com",
		})
		assertAppError(t, err, http.StatusBadRequest, "Name, email, and phone are required")
		m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestSubmitServiceRequest(t *testing.T) {
	t.Run("Should default subject to General Inquiry", func(t *testing.T) {
		m := new(MockMailer)
		sent := captureSend(m)

		err := newSubmissionUC(m).SubmitServiceRequest(context.Background(), &domain.ServiceRequest{
			Name: "Meera", Email: "meera@x.com", Phone: "999", ProjectDetails: "Office floor",
		})
		require.NoError(t, err)

		assert.Equal(t, "New Service Request: General Inquiry", sent.Subject)
		assert.Equal(t, "RR Designs Service Request", sent.FromName)
		assert.Equal(t, "meera@x.com", sent.ReplyTo)
		assert.Contains(t, sent.TextBody, "Service Type: Not specified")
		assert.Contains(t, sent.TextBody, "Budget Range: Not specified")
		assert.Contains(t, sent.TextBody, "Project Details:\nOffice floor")
	})

	t.Run("Should use the literal service type in the subject", func(t *testing.T) {
		m := new(MockMailer)
		sent := captureSend(m)

		err := newSubmissionUC(m).SubmitServiceRequest(context.Background(), &domain.ServiceRequest{
			Name: "Meera", Email: "meera@x.com", Phone: "999", ProjectDetails: "Office floor",
			ServiceType: "3D Visualization",
		})
		require.NoError(t, err)
		assert.Equal(t, "New Service Request: 3D Visualization", sent.Subject)
	})

	t.Run("Should require project details", func(t *testing.T) {
		m := new(MockMailer)
		err := newSubmissionUC(m).SubmitServiceRequest(context.Background(), &domain.ServiceRequest{
			Name: "Meera", Email: "meera@x.com", Phone: "999",
		})
		assertAppError(t, err, http.StatusBadRequest, "Name, email, phone, and project details are required")
		m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestSubmit_ReplyToIsNeverTheStudio(t *testing.T) {
	m := new(MockMailer)
	var replyTos []string
	m.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		replyTos = append(replyTos, args.Get(1).(*domain.EmailMessage).ReplyTo)
	})
	uc := newSubmissionUC(m)
	ctx := context.Background()

	require.NoError(t, uc.SubmitContact(ctx, &domain.ContactRequest{Name: "A", Email: "a@x.com", Phone: "1"}))
	require.NoError(t, uc.SubmitPricingQuote(ctx, &domain.PricingRequest{Name: "B", Email: "b@x.com", Phone: "2"}))
	require.NoError(t, uc.SubmitServiceRequest(ctx, &domain.ServiceRequest{Name: "C", Email: "c@x.com", Phone: "3", ProjectDetails: "d"}))

	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, replyTos)
}

func TestSubmit_SendSurvivesCallerCancellation(t *testing.T) {
	m := new(MockMailer)
	m.On("Send", mock.Anything, mock.Anything).Return(nil).Once().Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		assert.NoError(t, ctx.Err())
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newSubmissionUC(m).SubmitContact(ctx, &domain.ContactRequest{Name: "A", Email: "a@x.com", Phone: "1"})
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	got := usecase.NewHealthUsecase().Check(context.Background())
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "Server is running", got["message"])
}

func TestContentUsecase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewContentUsecase(
		memory.NewGalleryRepository(memory.DefaultGallery()),
		memory.NewProjectRepository(memory.DefaultProjects()),
		validation.New(),
	)

	t.Run("Should validate new gallery items", func(t *testing.T) {
		err := uc.AddGalleryItem(ctx, &domain.GalleryItem{Title: "  "})
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "Title is required")
		assert.Contains(t, appErr.Message, "Image URL is required")
	})

	t.Run("Should assign increasing ids", func(t *testing.T) {
		a := &domain.GalleryItem{Title: "A", Image: "a.jpg"}
		b := &domain.GalleryItem{Title: "B", Image: "b.jpg"}
		require.NoError(t, uc.AddGalleryItem(ctx, a))
		require.NoError(t, uc.AddGalleryItem(ctx, b))
		assert.Greater(t, b.ID, a.ID)
	})

	t.Run("Should map unknown ids to NotFound", func(t *testing.T) {
		_, err := uc.DeleteGalleryItem(ctx, 42)
		assertAppError(t, err, http.StatusNotFound, "Gallery item not found")

		_, err = uc.GetProject(ctx, 42)
		assertAppError(t, err, http.StatusNotFound, "Project not found")

		_, err = uc.UpdateProject(ctx, 42, &domain.ProjectPatch{})
		assertAppError(t, err, http.StatusNotFound, "Project not found")
	})

	t.Run("Should refuse blanking a required field", func(t *testing.T) {
		empty := ""
		_, err := uc.UpdateProject(ctx, 1, &domain.ProjectPatch{Name: &empty})
		assertAppError(t, err, http.StatusBadRequest, "Name cannot be empty")
	})

	t.Run("Should trim patched fields like created ones", func(t *testing.T) {
		item := &domain.GalleryItem{Title: "  Coastal Loft ", Image: " c.jpg "}
		require.NoError(t, uc.AddGalleryItem(ctx, item))
		assert.Equal(t, "Coastal Loft", item.Title)

		title, image := "  Lagoon Loft  ", "\tl.jpg "
		updated, err := uc.UpdateGalleryItem(ctx, item.ID, &domain.GalleryItemPatch{Title: &title, Image: &image})
		require.NoError(t, err)
		assert.Equal(t, "Lagoon Loft", updated.Title)
		assert.Equal(t, "l.jpg", updated.Image)

		name, category := " Skyline Residences II ", " Residential  "
		project, err := uc.UpdateProject(ctx, 1, &domain.ProjectPatch{Name: &name, Category: &category})
		require.NoError(t, err)
		assert.Equal(t, "Skyline Residences II", project.Name)
		assert.Equal(t, "Residential", project.Category)

		blankTitle := "   "
		_, err = uc.UpdateGalleryItem(ctx, item.ID, &domain.GalleryItemPatch{Title: &blankTitle})
		assertAppError(t, err, http.StatusBadRequest, "Title cannot be empty")
	})

	t.Run("Should create projects with validated fields", func(t *testing.T) {
		p := &domain.Project{Name: "Lotus Court", Category: "Residential", Images: domain.ImageList{"x.jpg"}}
		require.NoError(t, uc.AddProject(ctx, p))
		assert.Greater(t, p.ID, time.Now().Add(-time.Minute).UnixMilli())

		got, err := uc.GetProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lotus Court", got.Name)
	})
}

func TestAdminUsecase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAdminUsecase(memory.NewAdminCredentialStore("admin123"))

	assert.True(t, uc.VerifyPassword(ctx, "admin123"))
	assert.False(t, uc.VerifyPassword(ctx, "wrong"))

	assertAppError(t, uc.ChangePassword(ctx, " "), http.StatusBadRequest, "New password is required")

	require.NoError(t, uc.ChangePassword(ctx, "s3cret"))
	assert.True(t, uc.VerifyPassword(ctx, "s3cret"))
}
