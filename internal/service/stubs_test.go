package service

import (
	"context"

	"socialite/internal/models"
)

type userRepoStub struct {
	getByIDFn         func(context.Context, string) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	saveFn            func(context.Context, *models.User) error
	updateAvatarURLFn func(context.Context, string, string) error
	searchFn          func(context.Context, string, int, int) ([]models.User, error)
	listFn            func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Save(ctx context.Context, user *models.User) error {
	return s.saveFn(ctx, user)
}
func (s *userRepoStub) UpdateAvatarURL(ctx context.Context, id, avatarURL string) error {
	return s.updateAvatarURLFn(ctx, id, avatarURL)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, id string) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:          func(context.Context, *models.User) error { return nil },
		saveFn:            func(context.Context, *models.User) error { return nil },
		updateAvatarURLFn: func(context.Context, string, string) error { return nil },
		searchFn:          func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
		listFn:            func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, string, string) (*models.Post, error)
	getByIDsFn      func(context.Context, []string, string) ([]*models.Post, error)
	listByAuthorsFn func(context.Context, []string, int, int, string) ([]*models.Post, error)
	listByAuthorFn  func(context.Context, string, int, int, string) ([]*models.Post, error)
	listFn          func(context.Context, int, int, string) ([]*models.Post, error)
	updateFieldsFn  func(context.Context, string, map[string]interface{}) error
	deleteFn        func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID string) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByIDs(ctx context.Context, ids []string, currentUserID string) ([]*models.Post, error) {
	return s.getByIDsFn(ctx, ids, currentUserID)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int, currentUserID string) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID string, limit, offset int, currentUserID string) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID string) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ string) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		getByIDsFn: func(context.Context, []string, string) ([]*models.Post, error) { return nil, nil },
		listByAuthorsFn: func(context.Context, []string, int, int, string) ([]*models.Post, error) {
			return nil, nil
		},
		listByAuthorFn: func(context.Context, string, int, int, string) ([]*models.Post, error) {
			return nil, nil
		},
		listFn:         func(context.Context, int, int, string) ([]*models.Post, error) { return nil, nil },
		updateFieldsFn: func(context.Context, string, map[string]interface{}) error { return nil },
		deleteFn:       func(context.Context, string) error { return nil },
	}
}

type friendRepoStub struct {
	createRequestFn         func(context.Context, *models.FriendRequest) error
	getRequestByIDFn        func(context.Context, string) (*models.FriendRequest, error)
	pendingRequestBetweenFn func(context.Context, string, string) (*models.FriendRequest, error)
	incomingRequestsFn      func(context.Context, string) ([]models.FriendRequest, error)
	outgoingRequestsFn      func(context.Context, string) ([]models.FriendRequest, error)
	acceptRequestFn         func(context.Context, string) error
	declineRequestFn        func(context.Context, string) error
	removeFriendshipFn      func(context.Context, string, string) error
	areFriendsFn            func(context.Context, string, string) (bool, error)
	friendIDsFn             func(context.Context, string) ([]string, error)
	friendsFn               func(context.Context, string) ([]models.User, error)
}

func (s *friendRepoStub) CreateRequest(ctx context.Context, request *models.FriendRequest) error {
	return s.createRequestFn(ctx, request)
}
func (s *friendRepoStub) GetRequestByID(ctx context.Context, id string) (*models.FriendRequest, error) {
	return s.getRequestByIDFn(ctx, id)
}
func (s *friendRepoStub) PendingRequestBetween(ctx context.Context, userID1, userID2 string) (*models.FriendRequest, error) {
	return s.pendingRequestBetweenFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) IncomingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return s.incomingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) OutgoingRequests(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return s.outgoingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) AcceptRequest(ctx context.Context, requestID string) error {
	return s.acceptRequestFn(ctx, requestID)
}
func (s *friendRepoStub) DeclineRequest(ctx context.Context, requestID string) error {
	return s.declineRequestFn(ctx, requestID)
}
func (s *friendRepoStub) RemoveFriendship(ctx context.Context, userID1, userID2 string) error {
	return s.removeFriendshipFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) AreFriends(ctx context.Context, userID1, userID2 string) (bool, error) {
	return s.areFriendsFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	return s.friendIDsFn(ctx, userID)
}
func (s *friendRepoStub) Friends(ctx context.Context, userID string) ([]models.User, error) {
	return s.friendsFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createRequestFn: func(context.Context, *models.FriendRequest) error { return nil },
		getRequestByIDFn: func(_ context.Context, id string) (*models.FriendRequest, error) {
			return &models.FriendRequest{ID: id, Status: models.FriendRequestStatusPending}, nil
		},
		pendingRequestBetweenFn: func(context.Context, string, string) (*models.FriendRequest, error) {
			return nil, nil
		},
		incomingRequestsFn: func(context.Context, string) ([]models.FriendRequest, error) { return nil, nil },
		outgoingRequestsFn: func(context.Context, string) ([]models.FriendRequest, error) { return nil, nil },
		acceptRequestFn:    func(context.Context, string) error { return nil },
		declineRequestFn:   func(context.Context, string) error { return nil },
		removeFriendshipFn: func(context.Context, string, string) error { return nil },
		areFriendsFn:       func(context.Context, string, string) (bool, error) { return false, nil },
		friendIDsFn:        func(context.Context, string) ([]string, error) { return nil, nil },
		friendsFn:          func(context.Context, string) ([]models.User, error) { return nil, nil },
	}
}

type engagementRepoStub struct {
	likeFn            func(context.Context, string, string) error
	unlikeFn          func(context.Context, string, string) error
	isLikedFn         func(context.Context, string, string) (bool, error)
	likerIDsFn        func(context.Context, string) ([]string, error)
	likersFn          func(context.Context, string) ([]models.User, error)
	favoriteFn        func(context.Context, string, string) error
	unfavoriteFn      func(context.Context, string, string) error
	isFavoriteFn      func(context.Context, string, string) (bool, error)
	favoritePostIDsFn func(context.Context, string) ([]string, error)
}

func (s *engagementRepoStub) Like(ctx context.Context, postID, userID string) error {
	return s.likeFn(ctx, postID, userID)
}
func (s *engagementRepoStub) Unlike(ctx context.Context, postID, userID string) error {
	return s.unlikeFn(ctx, postID, userID)
}
func (s *engagementRepoStub) IsLiked(ctx context.Context, postID, userID string) (bool, error) {
	return s.isLikedFn(ctx, postID, userID)
}
func (s *engagementRepoStub) LikerIDs(ctx context.Context, postID string) ([]string, error) {
	return s.likerIDsFn(ctx, postID)
}
func (s *engagementRepoStub) Likers(ctx context.Context, postID string) ([]models.User, error) {
	return s.likersFn(ctx, postID)
}
func (s *engagementRepoStub) Favorite(ctx context.Context, userID, postID string) error {
	return s.favoriteFn(ctx, userID, postID)
}
func (s *engagementRepoStub) Unfavorite(ctx context.Context, userID, postID string) error {
	return s.unfavoriteFn(ctx, userID, postID)
}
func (s *engagementRepoStub) IsFavorite(ctx context.Context, userID, postID string) (bool, error) {
	return s.isFavoriteFn(ctx, userID, postID)
}
func (s *engagementRepoStub) FavoritePostIDs(ctx context.Context, userID string) ([]string, error) {
	return s.favoritePostIDsFn(ctx, userID)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		likeFn:            func(context.Context, string, string) error { return nil },
		unlikeFn:          func(context.Context, string, string) error { return nil },
		isLikedFn:         func(context.Context, string, string) (bool, error) { return false, nil },
		likerIDsFn:        func(context.Context, string) ([]string, error) { return nil, nil },
		likersFn:          func(context.Context, string) ([]models.User, error) { return nil, nil },
		favoriteFn:        func(context.Context, string, string) error { return nil },
		unfavoriteFn:      func(context.Context, string, string) error { return nil },
		isFavoriteFn:      func(context.Context, string, string) (bool, error) { return false, nil },
		favoritePostIDsFn: func(context.Context, string) ([]string, error) { return nil, nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, string) (*models.Comment, error)
	listByPostFn func(context.Context, string, int, int) ([]models.Comment, error)
	deleteFn     func(context.Context, string) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(context.Context, string, int, int) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(context.Context, string) error { return nil },
	}
}

type providerStub struct {
	createAccountFn func(context.Context, string, string) (string, error)
	signInFn        func(context.Context, string, string) (string, error)
}

func (s *providerStub) CreateAccount(ctx context.Context, email, password string) (string, error) {
	return s.createAccountFn(ctx, email, password)
}
func (s *providerStub) SignIn(ctx context.Context, email, password string) (string, error) {
	return s.signInFn(ctx, email, password)
}

type blobStoreStub struct {
	putFn    func(context.Context, string, []byte, string) (string, error)
	deleteFn func(context.Context, string) error
}

func (s *blobStoreStub) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	return s.putFn(ctx, key, content, contentType)
}
func (s *blobStoreStub) Delete(ctx context.Context, key string) error {
	return s.deleteFn(ctx, key)
}

func noopBlobStore() *blobStoreStub {
	return &blobStoreStub{
		putFn:    func(_ context.Context, key string, _ []byte, _ string) (string, error) { return "/" + key, nil },
		deleteFn: func(context.Context, string) error { return nil },
	}
}
