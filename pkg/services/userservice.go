package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"jarin-io/api/internal/common"
	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/util"
)

// UserService manages console accounts and their permissions.
type UserService interface {
	Authenticate(ctx context.Context, req models.UserAuthRequest, clientIP string) (*models.AdminUser, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (primitive.ObjectID, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	ListUsers(ctx context.Context, pagination util.PaginationArgs) ([]models.AdminUser, int64, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	ChangePassword(ctx context.Context, id primitive.ObjectID, req models.PasswordChangeRequest) error
	ListPermissions(ctx context.Context) ([]models.Permission, error)
}

type userService struct {
	userCollection       *mongo.Collection
	permissionCollection *mongo.Collection
}

func NewUserService() UserService {
	return &userService{
		userCollection:       util.GetCollection(util.DB, "AdminUser"),
		permissionCollection: util.GetCollection(util.DB, "Permission"),
	}
}

func (s *userService) Authenticate(ctx context.Context, req models.UserAuthRequest, clientIP string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.userCollection.FindOne(ctx, bson.M{"email": req.Email, "active": true}).Decode(&user); err != nil {
		return nil, &apperror.UnauthorizedError{Reason: "invalid email or password"}
	}

	if err := util.CheckPassword(user.PasswordDigest, req.Password); err != nil {
		return nil, &apperror.UnauthorizedError{Reason: "invalid email or password"}
	}

	now := time.Now()
	wc := writeconcern.New(writeconcern.WMajority())
	txnOptions := options.Transaction().SetWriteConcern(wc)
	session, err := util.DB.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	callback := func(sctx mongo.SessionContext) (any, error) {
		filter := bson.M{"_id": user.ID}
		update := bson.M{
			"$set": bson.M{
				"last_login":    now,
				"login_counts":  user.LoginCounts + 1,
				"last_login_ip": clientIP,
			},
		}
		return nil, s.userCollection.FindOneAndUpdate(sctx, filter, update).Decode(&user)
	}

	if _, err = session.WithTransaction(ctx, callback, txnOptions); err != nil {
		return nil, err
	}

	user.PasswordDigest = ""
	return &user, nil
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (primitive.ObjectID, error) {
	digest, err := util.HashPassword(req.Password)
	if err != nil {
		return primitive.NilObjectID, err
	}

	permissions := req.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	now := time.Now()
	user := models.AdminUser{
		ID:             primitive.NewObjectID(),
		Email:          req.Email,
		Name:           req.Name,
		PasswordDigest: digest,
		Permissions:    permissions,
		Active:         true,
		// New accounts must rotate the password handed to them.
		ForceChangePassword: true,
		CreatedAt:           now,
		ModifiedAt:          now,
	}

	if _, err := s.userCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, &apperror.ConflictError{Resource: "user email"}
		}
		return primitive.NilObjectID, err
	}

	return user.ID, nil
}

func (s *userService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	var user models.AdminUser
	err := s.userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperror.NotFoundError{Resource: "user"}
		}
		return nil, err
	}

	user.PasswordDigest = ""
	return &user, nil
}

func (s *userService) ListUsers(ctx context.Context, pagination util.PaginationArgs) ([]models.AdminUser, int64, error) {
	count, err := s.userCollection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetListSortBson(pagination.Sort)).
		SetProjection(bson.M{"password_digest": 0})

	cursor, err := s.userCollection.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, 0, err
	}

	var users []models.AdminUser
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (s *userService) UpdateUser(ctx context.Context, id primitive.ObjectID, req models.UpdateUserRequest) error {
	set := bson.M{"modified_at": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Permissions != nil {
		set["permissions"] = req.Permissions
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	res, err := s.userCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperror.NotFoundError{Resource: "user"}
	}

	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.userCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperror.NotFoundError{Resource: "user"}
	}

	return nil
}

// ChangePassword verifies the current password, stores the new digest and
// clears the force-change flag in the same update.
func (s *userService) ChangePassword(ctx context.Context, id primitive.ObjectID, req models.PasswordChangeRequest) error {
	if len(req.NewPassword) < common.MIN_PASSWORD_LENGTH {
		return apperror.NewValidation("newPassword", "must be at least 8 characters")
	}

	var user models.AdminUser
	if err := s.userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return &apperror.NotFoundError{Resource: "user"}
		}
		return err
	}

	if err := util.CheckPassword(user.PasswordDigest, req.CurrentPassword); err != nil {
		return apperror.NewValidation("currentPassword", "does not match")
	}

	digest, err := util.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"password_digest":       digest,
			"force_change_password": false,
			"modified_at":           time.Now(),
		},
	}
	_, err = s.userCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (s *userService) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	find := options.Find().SetSort(bson.M{"code": 1})
	cursor, err := s.permissionCollection.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, err
	}

	var permissions []models.Permission
	if err = cursor.All(ctx, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}
