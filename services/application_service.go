package services

import (
	"fmt"
	"strings"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"
)

// ApplicationService persists job applications and forwards each one to the
// hiring inbox through the mail collaborator.
type ApplicationService struct {
	Repo   *repository.ApplicationRepository
	Mailer Mailer
	To     string // hiring inbox; forwarding is skipped when empty
}

func NewApplicationService(repo *repository.ApplicationRepository, mailer Mailer, to string) *ApplicationService {
	return &ApplicationService{Repo: repo, Mailer: mailer, To: to}
}

type SubmitApplicationIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

func (s *ApplicationService) Submit(in *SubmitApplicationIn) (*entity.JobApplication, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalid)
	}
	if strings.TrimSpace(in.Position) == "" {
		return nil, fmt.Errorf("%w: position is required", ErrInvalid)
	}

	app := entity.JobApplication{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Position: strings.TrimSpace(in.Position),
		Message:  in.Message,
	}
	if err := s.Repo.Create(&app); err != nil {
		return nil, err
	}

	if s.Mailer != nil && s.To != "" {
		subject := fmt.Sprintf("Job application: %s (%s)", app.Name, app.Position)
		body := fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\nPosition: %s\n\n%s\n",
			app.Name, app.Email, app.Phone, app.Position, app.Message,
		)
		if err := s.Mailer.Send(s.To, subject, body); err != nil {
			return nil, fmt.Errorf("application saved but forwarding failed: %w", err)
		}
	}
	return &app, nil
}

func (s *ApplicationService) List() ([]entity.JobApplication, error) {
	return s.Repo.FindAll()
}
