package repositories

import (
	"context"
	"time"

	"ExpenseAPI/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

type FirestoreUserRepository struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{FirestoreClient: client}
}

var _ UserRepository = (*FirestoreUserRepository)(nil)

func (r *FirestoreUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := r.FirestoreClient.Collection(usersCollection).
		Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()
	return firstUser(iter)
}

func (r *FirestoreUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.FirestoreClient.Collection(usersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *FirestoreUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil || user != nil {
		return user, err
	}

	iter := r.FirestoreClient.Collection(usersCollection).
		Where("username", "==", username).Limit(1).Documents(ctx)
	defer iter.Stop()
	return firstUser(iter)
}

// Create checks both unique fields and writes the new user inside one
// transaction, so two concurrent registrations cannot both succeed.
func (r *FirestoreUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	users := r.FirestoreClient.Collection(usersCollection)
	docRef := users.NewDoc()

	record := *user
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	err := r.FirestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, q := range []firestore.Query{
			users.Where("email", "==", record.Email).Limit(1),
			users.Where("username", "==", record.Username).Limit(1),
		} {
			docs, err := tx.Documents(q).GetAll()
			if err != nil {
				return err
			}
			if len(docs) > 0 {
				return ErrDuplicate
			}
		}
		return tx.Create(docRef, &record)
	})
	if err != nil {
		return nil, err
	}

	record.ID = docRef.ID
	return &record, nil
}

func firstUser(iter *firestore.DocumentIterator) (*models.User, error) {
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
