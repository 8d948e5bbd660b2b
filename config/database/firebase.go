package database

import (
	"context"
	"encoding/base64"
	"fmt"

	"ExpenseAPI/logging"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// NewFirestoreClient builds a Firestore client from base64-encoded service
// account credentials.
func NewFirestoreClient(ctx context.Context, encodedCredentials, projectID string) (*firestore.Client, error) {
	if encodedCredentials == "" {
		return nil, fmt.Errorf("firebase credentials are missing")
	}
	if projectID == "" {
		return nil, fmt.Errorf("firebase project id is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	logging.Info().Str("project", projectID).Msg("Firestore client initialized")
	return client, nil
}
