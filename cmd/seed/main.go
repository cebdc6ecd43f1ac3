package main

import (
	"fmt"

	"markblog/internal/model"
	"markblog/pkg/config"
	"markblog/pkg/database"
	"markblog/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		name     string
		password string
	}{
		{"alice@test.com", "alice", "Alice Wong", "password123"},
		{"bob@test.com", "bob", "Bob Martin", "password123"},
		{"charlie@test.com", "charlie", "Charlie Fox", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:    userData.email,
			Username: userData.username,
			Name:     userData.name,
			Password: string(hashedPassword),
		}

		var existingUser model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	postIDs := make([]string, 0)
	for i, authorID := range userIDs {
		for j := 0; j < 2; j++ {
			post := &model.PostModel{
				Title:    fmt.Sprintf("Getting started, part %d", i*2+j+1),
				Content:  fmt.Sprintf("# Hello\n\nThis is seeded Markdown post %d by user %d.", j+1, i+1),
				AuthorID: authorID,
			}
			if err := db.Create(post).Error; err != nil {
				log.Error("Failed to create post for user %s: %v", authorID, err)
				continue
			}
			postIDs = append(postIDs, post.ID)
		}
	}

	for _, postID := range postIDs {
		for _, userID := range userIDs {
			comment := &model.CommentModel{
				Content:  "Nice write-up!",
				PostID:   postID,
				AuthorID: userID,
			}
			if err := db.Create(comment).Error; err != nil {
				log.Error("Failed to create comment on post %s: %v", postID, err)
			}

			like := &model.LikeModel{
				PostID: postID,
				UserID: userID,
			}
			if err := db.Create(like).Error; err != nil {
				// Unique index trips when re-seeding; that's fine
				log.Warn("Skipping like on post %s by user %s: %v", postID, userID, err)
			}
		}
	}

	return nil
}
