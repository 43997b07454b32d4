package services

import (
	"errors"
	"strings"

	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
)

// In-memory repository doubles. Each fake tracks its write calls so tests
// can assert that a rejected operation never touched storage.

type fakeUserRepo struct {
	users       map[uint64]*models.User
	nextID      uint64
	saveCalls   int
	deleteCalls int

	// Linked stores, set by fixtures that exercise account removal. When
	// present, DeleteCascading mirrors the transactional cascade and
	// enforces the creator references the way the FK constraints do.
	collabs *fakeCollabRepo
	convs   *fakeConvRepo
	favs    *fakeFavRepo
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*models.User), nextID: 1}
}

func (r *fakeUserRepo) add(u models.User) *models.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	stored := u
	r.users[stored.ID] = &stored
	return &stored
}

func (r *fakeUserRepo) FindByID(id uint64) (*models.User, bool, error) {
	u, ok := r.users[id]
	return u, ok, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeUserRepo) FindByArtisticName(name string) (*models.User, bool, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, u := range r.users {
		if strings.ToLower(u.ArtisticName) == want {
			return u, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok, _ := r.FindByEmail(email)
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmailExcept(email string, userID uint64) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Save(user *models.User) error {
	r.saveCalls++
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) ReplaceGenres(user *models.User, genres []models.MusicGenre) error {
	user.Genres = genres
	if stored, ok := r.users[user.ID]; ok {
		stored.Genres = genres
	}
	return nil
}

func (r *fakeUserRepo) DeleteCascading(user *models.User) error {
	r.deleteCalls++
	if r.convs != nil {
		for id, c := range r.convs.convs {
			if c.CreatorID != user.ID {
				continue
			}
			if r.favs != nil {
				for k := range r.favs.pairs {
					if k.convID == id {
						delete(r.favs.pairs, k)
					}
				}
			}
			delete(r.convs.convs, id)
		}
	}
	if r.favs != nil {
		for k := range r.favs.pairs {
			if k.userID == user.ID {
				delete(r.favs.pairs, k)
			}
		}
	}
	if r.collabs != nil {
		for id, c := range r.collabs.collabs {
			if c.CreatorID == user.ID {
				delete(r.collabs.collabs, id)
			}
		}
	}
	// Simulate the creator FK constraints: a user row cannot go away while
	// a collaboration or convocation still points at it.
	if r.collabs != nil {
		for _, c := range r.collabs.collabs {
			if c.CreatorID == user.ID {
				return errors.New("delete on table \"users\" violates foreign key constraint \"fk_collaborations_creator\"")
			}
		}
	}
	if r.convs != nil {
		for _, c := range r.convs.convs {
			if c.CreatorID == user.ID {
				return errors.New("delete on table \"users\" violates foreign key constraint \"fk_convocations_creator\"")
			}
		}
	}
	delete(r.users, user.ID)
	return nil
}

type fakeBandRepo struct {
	bands       map[uint64]*models.Band
	nextID      uint64
	createCalls int
	deleteCalls int
}

func newFakeBandRepo() *fakeBandRepo {
	return &fakeBandRepo{bands: make(map[uint64]*models.Band), nextID: 1}
}

func (r *fakeBandRepo) add(b models.Band) *models.Band {
	if b.ID == 0 {
		b.ID = r.nextID
	}
	if b.ID >= r.nextID {
		r.nextID = b.ID + 1
	}
	stored := b
	r.bands[stored.ID] = &stored
	return &stored
}

func (r *fakeBandRepo) FindByID(id uint64) (*models.Band, bool, error) {
	b, ok := r.bands[id]
	return b, ok, nil
}

func (r *fakeBandRepo) ExistsByNameInsensitive(name string) (bool, error) {
	for _, b := range r.bands {
		if strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBandRepo) FindAll() ([]models.Band, error) {
	out := make([]models.Band, 0, len(r.bands))
	for _, b := range r.bands {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBandRepo) ExistsAdministeredBy(userID uint64) (bool, error) {
	for _, b := range r.bands {
		if b.AdminID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBandRepo) Create(band *models.Band) error {
	r.createCalls++
	band.ID = r.nextID
	r.nextID++
	stored := *band
	r.bands[band.ID] = &stored
	return nil
}

func (r *fakeBandRepo) Update(band *models.Band) error {
	stored := *band
	r.bands[band.ID] = &stored
	return nil
}

func (r *fakeBandRepo) AddMember(band *models.Band, user *models.User) error {
	stored := r.bands[band.ID]
	stored.Members = append(stored.Members, *user)
	band.Members = stored.Members
	return nil
}

func (r *fakeBandRepo) DeleteCascading(band *models.Band) error {
	r.deleteCalls++
	delete(r.bands, band.ID)
	return nil
}

type fakeCollabRepo struct {
	collabs     map[uint64]*models.Collaboration
	nextID      uint64
	createCalls int
	deleteCalls int
}

func newFakeCollabRepo() *fakeCollabRepo {
	return &fakeCollabRepo{collabs: make(map[uint64]*models.Collaboration), nextID: 1}
}

func (r *fakeCollabRepo) add(c models.Collaboration) *models.Collaboration {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	stored := c
	r.collabs[stored.ID] = &stored
	return &stored
}

func (r *fakeCollabRepo) FindByID(id uint64) (*models.Collaboration, bool, error) {
	c, ok := r.collabs[id]
	return c, ok, nil
}

func (r *fakeCollabRepo) ExistsByTitleInsensitive(title string) (bool, error) {
	for _, c := range r.collabs {
		if strings.EqualFold(c.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCollabRepo) FindAll() ([]models.Collaboration, error) {
	out := make([]models.Collaboration, 0, len(r.collabs))
	for _, c := range r.collabs {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCollabRepo) FindByStatusIn(statuses []catalog.CollaborationStatus) ([]models.Collaboration, error) {
	var out []models.Collaboration
	for _, c := range r.collabs {
		for _, st := range statuses {
			if c.Status == st {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) FindByCreatorArtisticName(name string) ([]models.Collaboration, error) {
	var out []models.Collaboration
	for _, c := range r.collabs {
		if strings.EqualFold(c.Creator.ArtisticName, strings.TrimSpace(name)) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) Create(collab *models.Collaboration) error {
	r.createCalls++
	collab.ID = r.nextID
	r.nextID++
	stored := *collab
	r.collabs[collab.ID] = &stored
	return nil
}

func (r *fakeCollabRepo) Update(collab *models.Collaboration) error {
	stored := *collab
	r.collabs[collab.ID] = &stored
	return nil
}

func (r *fakeCollabRepo) AddCollaborator(collab *models.Collaboration, user *models.User) error {
	stored := r.collabs[collab.ID]
	stored.Collaborators = append(stored.Collaborators, *user)
	collab.Collaborators = stored.Collaborators
	return nil
}

func (r *fakeCollabRepo) DeleteCascading(collab *models.Collaboration) error {
	r.deleteCalls++
	delete(r.collabs, collab.ID)
	return nil
}

type fakeConvRepo struct {
	convs       map[uint64]*models.Convocation
	nextID      uint64
	createCalls int
	deleteCalls int
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{convs: make(map[uint64]*models.Convocation), nextID: 1}
}

func (r *fakeConvRepo) add(c models.Convocation) *models.Convocation {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	stored := c
	r.convs[stored.ID] = &stored
	return &stored
}

func (r *fakeConvRepo) FindByID(id uint64) (*models.Convocation, bool, error) {
	c, ok := r.convs[id]
	return c, ok, nil
}

func (r *fakeConvRepo) FindAll() ([]models.Convocation, error) {
	out := make([]models.Convocation, 0, len(r.convs))
	for _, c := range r.convs {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeConvRepo) FindAllActive() ([]models.Convocation, error) {
	var out []models.Convocation
	for _, c := range r.convs {
		if c.Active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConvRepo) Create(conv *models.Convocation) error {
	r.createCalls++
	conv.ID = r.nextID
	r.nextID++
	stored := *conv
	r.convs[conv.ID] = &stored
	return nil
}

func (r *fakeConvRepo) Update(conv *models.Convocation) error {
	stored := *conv
	r.convs[conv.ID] = &stored
	return nil
}

func (r *fakeConvRepo) DeleteCascading(conv *models.Convocation) error {
	r.deleteCalls++
	delete(r.convs, conv.ID)
	return nil
}

type favKey struct {
	userID, convID uint64
}

type fakeFavRepo struct {
	pairs       map[favKey]*models.ConvocationFavorite
	nextID      uint64
	createCalls int
}

func newFakeFavRepo() *fakeFavRepo {
	return &fakeFavRepo{pairs: make(map[favKey]*models.ConvocationFavorite), nextID: 1}
}

func (r *fakeFavRepo) FindByUser(userID uint64) ([]models.ConvocationFavorite, error) {
	var out []models.ConvocationFavorite
	for k, f := range r.pairs {
		if k.userID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFavRepo) FindPair(userID, convocationID uint64) (*models.ConvocationFavorite, bool, error) {
	f, ok := r.pairs[favKey{userID, convocationID}]
	return f, ok, nil
}

func (r *fakeFavRepo) ExistsPair(userID, convocationID uint64) (bool, error) {
	_, ok := r.pairs[favKey{userID, convocationID}]
	return ok, nil
}

func (r *fakeFavRepo) Create(fav *models.ConvocationFavorite) error {
	r.createCalls++
	fav.ID = r.nextID
	r.nextID++
	stored := *fav
	r.pairs[favKey{fav.UserID, fav.ConvocationID}] = &stored
	return nil
}

func (r *fakeFavRepo) Delete(fav *models.ConvocationFavorite) error {
	delete(r.pairs, favKey{fav.UserID, fav.ConvocationID})
	return nil
}

type fakeFollowRepo struct {
	edges       []*models.Follow
	nextID      uint64
	createCalls int
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{nextID: 1}
}

func (r *fakeFollowRepo) FindByFollower(followerID uint64) ([]models.Follow, error) {
	var out []models.Follow
	for _, e := range r.edges {
		if e.FollowerID == followerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) ExistsUserEdge(followerID, followedUserID uint64) (bool, error) {
	_, ok, _ := r.FindUserEdge(followerID, followedUserID)
	return ok, nil
}

func (r *fakeFollowRepo) ExistsBandEdge(followerID, followedBandID uint64) (bool, error) {
	_, ok, _ := r.FindBandEdge(followerID, followedBandID)
	return ok, nil
}

func (r *fakeFollowRepo) FindUserEdge(followerID, followedUserID uint64) (*models.Follow, bool, error) {
	for _, e := range r.edges {
		if e.FollowerID == followerID && e.FollowedUserID != nil && *e.FollowedUserID == followedUserID {
			return e, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeFollowRepo) FindBandEdge(followerID, followedBandID uint64) (*models.Follow, bool, error) {
	for _, e := range r.edges {
		if e.FollowerID == followerID && e.FollowedBandID != nil && *e.FollowedBandID == followedBandID {
			return e, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeFollowRepo) Create(follow *models.Follow) error {
	r.createCalls++
	follow.ID = r.nextID
	r.nextID++
	stored := *follow
	r.edges = append(r.edges, &stored)
	return nil
}

func (r *fakeFollowRepo) Delete(follow *models.Follow) error {
	for i, e := range r.edges {
		if e.ID == follow.ID {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePostRepo struct {
	posts       map[uint64]*models.Post
	nextID      uint64
	createCalls int
	deleteCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*models.Post), nextID: 1}
}

func (r *fakePostRepo) add(p models.Post) *models.Post {
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	stored := p
	r.posts[stored.ID] = &stored
	return &stored
}

func (r *fakePostRepo) FindByID(id uint64) (*models.Post, bool, error) {
	p, ok := r.posts[id]
	return p, ok, nil
}

func (r *fakePostRepo) FindAll() ([]models.Post, error) {
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) Create(post *models.Post) error {
	r.createCalls++
	post.ID = r.nextID
	r.nextID++
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) Update(post *models.Post) error {
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) DeleteCascading(post *models.Post) error {
	r.deleteCalls++
	delete(r.posts, post.ID)
	return nil
}

type fakeCommentRepo struct {
	comments    map[uint64]*models.Comment
	nextID      uint64
	createCalls int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*models.Comment), nextID: 1}
}

func (r *fakeCommentRepo) FindByID(id uint64) (*models.Comment, bool, error) {
	c, ok := r.comments[id]
	return c, ok, nil
}

func (r *fakeCommentRepo) FindByPost(postID uint64) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.createCalls++
	comment.ID = r.nextID
	r.nextID++
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) Update(comment *models.Comment) error {
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) Delete(comment *models.Comment) error {
	delete(r.comments, comment.ID)
	return nil
}

// fakeCatalogRepo mirrors a fully seeded catalog table.
type fakeCatalogRepo struct {
	genres map[catalog.MusicGenre]models.MusicGenre
	roles  map[uint64]models.Role
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	r := &fakeCatalogRepo{
		genres: make(map[catalog.MusicGenre]models.MusicGenre),
		roles:  make(map[uint64]models.Role),
	}
	for i, g := range catalog.MusicGenres() {
		r.genres[g] = models.MusicGenre{ID: uint64(i + 1), Name: g}
	}
	for i, role := range catalog.Roles() {
		r.roles[uint64(i+1)] = models.Role{ID: uint64(i + 1), Name: role}
	}
	return r
}

func (r *fakeCatalogRepo) roleByName(name catalog.Role) models.Role {
	for _, role := range r.roles {
		if role.Name == name {
			return role
		}
	}
	return models.Role{}
}

func (r *fakeCatalogRepo) FindGenresByName(names []catalog.MusicGenre) ([]models.MusicGenre, error) {
	var out []models.MusicGenre
	for _, n := range names {
		if row, ok := r.genres[n]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindRoleByID(id uint64) (*models.Role, bool, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, false, nil
	}
	return &role, true, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Matches(plain, hashed string) bool { return hashed == "hashed:"+plain }

type fakeIssuer struct{}

func (fakeIssuer) Issue(subject string) (string, error) { return "token-for-" + subject, nil }
