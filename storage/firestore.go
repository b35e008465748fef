package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hirerank/backend/config"
	"github.com/hirerank/backend/models"
)

const (
	usersCollection    = "users"
	rankingsCollection = "rankings"
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// --- Analysis records ---

// StoreAnalysis persists an analysis record and returns its document ID.
func (f *FirestoreClient) StoreAnalysis(ctx context.Context, record *models.AnalysisRecord) (string, error) {
	record.UploadedAt = time.Now()

	docRef, _, err := f.client.Collection(rankingsCollection).Add(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to store analysis: %w", err)
	}

	record.ID = docRef.ID
	return docRef.ID, nil
}

// GetRankings returns analyses sorted by match score, optionally filtered by
// job title.
func (f *FirestoreClient) GetRankings(ctx context.Context, jobTitle string, limit int) ([]models.AnalysisRecord, error) {
	query := f.client.Collection(rankingsCollection).Query
	if jobTitle != "" {
		query = query.Where("jobTitle", "==", jobTitle)
	}
	query = query.OrderBy("matchScore", firestore.Desc).Limit(limit)

	return f.collectRecords(ctx, query)
}

// GetAnalysesByJob returns the analyses stored for one job title, newest
// first.
func (f *FirestoreClient) GetAnalysesByJob(ctx context.Context, jobTitle string, limit int) ([]models.AnalysisRecord, error) {
	query := f.client.Collection(rankingsCollection).
		Where("jobTitle", "==", jobTitle).
		OrderBy("uploadedAt", firestore.Desc).
		Limit(limit)

	return f.collectRecords(ctx, query)
}

// GetTopCandidates returns the highest scoring candidates for one job title.
func (f *FirestoreClient) GetTopCandidates(ctx context.Context, jobTitle string, limit int) ([]models.AnalysisRecord, error) {
	query := f.client.Collection(rankingsCollection).
		Where("jobTitle", "==", jobTitle).
		OrderBy("matchScore", firestore.Desc).
		Limit(limit)

	return f.collectRecords(ctx, query)
}

// GetHistory returns all analyses sorted by upload time, newest first.
func (f *FirestoreClient) GetHistory(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	query := f.client.Collection(rankingsCollection).
		OrderBy("uploadedAt", firestore.Desc).
		Limit(limit)

	return f.collectRecords(ctx, query)
}

// GetTopPerformers returns the highest scoring candidates across all
// positions.
func (f *FirestoreClient) GetTopPerformers(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	query := f.client.Collection(rankingsCollection).
		OrderBy("matchScore", firestore.Desc).
		Limit(limit)

	return f.collectRecords(ctx, query)
}

// GetCandidateByID fetches one analysis record.
func (f *FirestoreClient) GetCandidateByID(ctx context.Context, candidateID string) (*models.AnalysisRecord, error) {
	doc, err := f.client.Collection(rankingsCollection).Doc(candidateID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.New("candidate not found")
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	var record models.AnalysisRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("failed to parse analysis data: %w", err)
	}
	record.ID = doc.Ref.ID
	return &record, nil
}

// UpdateRemarks sets the recruiter remarks on a record. Returns false when
// the record does not exist.
func (f *FirestoreClient) UpdateRemarks(ctx context.Context, candidateID, remarks string) (bool, error) {
	docRef := f.client.Collection(rankingsCollection).Doc(candidateID)

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check candidate existence: %w", err)
	}

	_, err = docRef.Update(ctx, []firestore.Update{
		{Path: "remarks", Value: remarks},
	})
	if err != nil {
		return false, fmt.Errorf("failed to update remarks: %w", err)
	}
	return true, nil
}

// DeleteAnalysis removes a record. Returns false when the record does not
// exist.
func (f *FirestoreClient) DeleteAnalysis(ctx context.Context, candidateID string) (bool, error) {
	docRef := f.client.Collection(rankingsCollection).Doc(candidateID)

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check candidate existence: %w", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return true, nil
}

// GetStatistics aggregates score statistics over stored analyses, optionally
// filtered by job title.
func (f *FirestoreClient) GetStatistics(ctx context.Context, jobTitle string) (*models.StatisticsResponse, error) {
	query := f.client.Collection(rankingsCollection).Query
	if jobTitle != "" {
		query = query.Where("jobTitle", "==", jobTitle)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	stats := &models.StatisticsResponse{}
	var sum float64
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate analyses: %w", err)
		}

		var record models.AnalysisRecord
		if err := doc.DataTo(&record); err != nil {
			continue
		}

		if stats.TotalAnalyses == 0 {
			stats.HighestScore = record.MatchScore
			stats.LowestScore = record.MatchScore
		} else {
			if record.MatchScore > stats.HighestScore {
				stats.HighestScore = record.MatchScore
			}
			if record.MatchScore < stats.LowestScore {
				stats.LowestScore = record.MatchScore
			}
		}
		sum += record.MatchScore
		stats.TotalAnalyses++
	}

	if stats.TotalAnalyses > 0 {
		stats.AverageScore = sum / float64(stats.TotalAnalyses)
	}
	return stats, nil
}

func (f *FirestoreClient) collectRecords(ctx context.Context, query firestore.Query) ([]models.AnalysisRecord, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []models.AnalysisRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate analyses: %w", err)
		}

		var record models.AnalysisRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to parse analysis data: %w", err)
		}
		record.ID = doc.Ref.ID
		records = append(records, record)
	}
	return records, nil
}

// --- Users ---

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Check if user already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return errors.New("user with this email already exists")
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	// Create user
	_, err = docRef.Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(email)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.New("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserProfile updates user's display name
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email string, name string) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}

	if len(updates) == 0 {
		return nil
	}

	return f.UpdateUser(ctx, email, updates)
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
