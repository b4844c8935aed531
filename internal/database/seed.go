package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

// Seed populates the database with initial development data: a default
// editor account and a demo "pitch-deck" template with a couple of slides
// so the renderer has something to chew on out of the box. No-op when
// data already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	users := store.NewUserStore(db)
	if _, err := users.Create(&models.User{
		Email:        "admin@powerpresent.local",
		PasswordHash: string(hash),
		DisplayName:  "Admin",
		Role:         models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if err := seedDemoTemplate(db); err != nil {
		return err
	}

	slog.Info("database seeded with default admin user and demo template",
		"email", "admin@powerpresent.local",
		"password", "admin",
	)

	return nil
}

// seedDemoTemplate creates the "pitch-deck" template: a title slide with
// a left-heading variation, and a bullets slide with a repeated group.
func seedDemoTemplate(db *sql.DB) error {
	templates := store.NewTemplateStore(db)
	slides := store.NewSlideStore(db)
	variations := store.NewVariationStore(db)

	tpl, err := templates.Create(&models.Template{
		Name:        "pitch-deck",
		Category:    "business",
		Description: "Professional pitch deck template with modern design elements.",
	})
	if err != nil {
		return fmt.Errorf("seed template: %w", err)
	}

	title, err := slides.Create(&models.Slide{
		TemplateID:      tpl.ID,
		Name:            "title-slide",
		Variant:         "default",
		BackgroundColor: "#ffffff",
		Style: models.Style{
			{Key: "display", Value: "flex"},
			{Key: "flexDirection", Value: "column"},
			{Key: "justifyContent", Value: "center"},
		},
		Elements: []models.Element{
			{
				Type: models.ElementHeading1,
				Style: models.Style{
					{Key: "fontSize", Value: "48px"},
					{Key: "textAlign", Value: "center"},
				},
			},
			{
				Type: models.ElementParagraph,
				Style: models.Style{
					{Key: "textAlign", Value: "center"},
					{Key: "color", Value: "#64748b"},
				},
			},
		},
		Position: 0,
	})
	if err != nil {
		return fmt.Errorf("seed title slide: %w", err)
	}

	if _, err := variations.Create(&models.Variation{
		SlideID:         title.ID,
		Name:            "pitch-deck_title-slide",
		Variant:         "left-heading",
		BackgroundColor: "#f8fafc",
		Elements: []models.Element{
			{
				Type: models.ElementHeading1,
				Style: models.Style{
					{Key: "fontSize", Value: "40px"},
					{Key: "textAlign", Value: "left"},
				},
			},
		},
		Position: 0,
	}); err != nil {
		return fmt.Errorf("seed title variation: %w", err)
	}

	if _, err := slides.Create(&models.Slide{
		TemplateID:      tpl.ID,
		Name:            "bullets-slide",
		Variant:         "default",
		BackgroundColor: "#ffffff",
		Elements: []models.Element{
			{
				Type: models.ElementHeading2,
			},
			{
				Type:   models.ElementGroup,
				Repeat: 3,
				Style: models.Style{
					{Key: "display", Value: "flex"},
					{Key: "gap", Value: "16px"},
				},
				Children: []models.Element{
					{
						Type:     models.ElementParagraph,
						DataType: models.DataTypeNumberedBullet,
					},
					{
						Type: models.ElementParagraph,
						Style: models.Style{
							{Key: "fontWeight", Value: "600"},
						},
					},
				},
			},
			{
				Type: models.ElementUnorderedBullets,
				Style: models.Style{
					{Key: "listStyleType", Value: "disc"},
					{Key: "li", Value: models.Style{
						{Key: "marginBottom", Value: "8px"},
					}},
				},
			},
		},
		Position: 1,
	}); err != nil {
		return fmt.Errorf("seed bullets slide: %w", err)
	}

	return nil
}
