package services

import (
	"strings"

	"testblog/models"
	"testblog/repositories"
)

// In-memory repositories backing the service tests. They mirror the
// contracts of the gorm implementations, including the typed not-found
// errors and the case-insensitive user lookups.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles     map[uint]*models.Role
	userRoles []models.UserRole
	nextID    uint
}

func newFakeRoleRepo() *fakeRoleRepo {
	r := &fakeRoleRepo{roles: map[uint]*models.Role{}, nextID: 1}
	for _, name := range []models.RoleName{models.RoleAdmin, models.RoleModerator, models.RoleUser} {
		_ = r.Create(&models.Role{Name: name})
	}
	return r
}

func (r *fakeRoleRepo) Create(role *models.Role) error {
	role.ID = r.nextID
	r.nextID++
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) GetByID(id uint) (*models.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, repositories.ErrRoleNotFound
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRoleRepo) GetByName(name models.RoleName) (*models.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, repositories.ErrRoleNotFound
}

func (r *fakeRoleRepo) GetAll() ([]models.Role, error) {
	out := make([]models.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *fakeRoleRepo) GetRolesForUser(userID uint) ([]models.Role, error) {
	var out []models.Role
	for _, ur := range r.userRoles {
		if ur.UserID != userID {
			continue
		}
		if role, ok := r.roles[ur.RoleID]; ok {
			out = append(out, *role)
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) HasUserRole(userID, roleID uint) (bool, error) {
	for _, ur := range r.userRoles {
		if ur.UserID == userID && ur.RoleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRoleRepo) AddUserRole(userRole *models.UserRole) error {
	r.userRoles = append(r.userRoles, *userRole)
	return nil
}

func (r *fakeRoleRepo) RemoveUserRole(userID, roleID uint) (bool, error) {
	for i, ur := range r.userRoles {
		if ur.UserID == userID && ur.RoleID == roleID {
			r.userRoles = append(r.userRoles[:i], r.userRoles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRoleRepo) countPairings(userID, roleID uint) int {
	n := 0
	for _, ur := range r.userRoles {
		if ur.UserID == userID && ur.RoleID == roleID {
			n++
		}
	}
	return n
}

type fakeArticleRepo struct {
	articles    map[uint]*models.Article
	tags        map[uint]*models.Tag
	articleTags []models.ArticleTag
	nextID      uint
	nextTagID   uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles:  map[uint]*models.Article{},
		tags:      map[uint]*models.Tag{},
		nextID:    1,
		nextTagID: 1,
	}
}

func (r *fakeArticleRepo) addTag(name string) *models.Tag {
	tag := &models.Tag{ID: r.nextTagID, Name: name}
	r.nextTagID++
	r.tags[tag.ID] = tag
	return tag
}

func (r *fakeArticleRepo) CreateWithTags(article *models.Article, tagIDs []uint) error {
	for _, id := range tagIDs {
		if _, ok := r.tags[id]; !ok {
			return repositories.ErrUnknownTag
		}
	}
	article.ID = r.nextID
	r.nextID++
	cp := *article
	r.articles[article.ID] = &cp
	for _, id := range tagIDs {
		r.articleTags = append(r.articleTags, models.ArticleTag{ArticleID: article.ID, TagID: id})
	}
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, repositories.ErrArticleNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) GetAll() ([]models.Article, error) {
	out := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeArticleRepo) GetPublished() ([]models.Article, error) {
	var out []models.Article
	for _, a := range r.articles {
		if a.IsPublished {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) GetByAuthor(authorID uint) ([]models.Article, error) {
	var out []models.Article
	for _, a := range r.articles {
		if a.AuthorID == authorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) GetByTag(tagID uint) ([]models.Article, error) {
	var out []models.Article
	for _, at := range r.articleTags {
		if at.TagID != tagID {
			continue
		}
		if a, ok := r.articles[at.ArticleID]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) GetTagsForArticle(articleID uint) ([]models.Tag, error) {
	var out []models.Tag
	for _, at := range r.articleTags {
		if at.ArticleID != articleID {
			continue
		}
		if tag, ok := r.tags[at.TagID]; ok {
			out = append(out, *tag)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return repositories.ErrArticleNotFound
	}
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) UpdateWithTags(article *models.Article, tagIDs []uint) error {
	if _, ok := r.articles[article.ID]; !ok {
		return repositories.ErrArticleNotFound
	}
	for _, id := range tagIDs {
		if _, ok := r.tags[id]; !ok {
			return repositories.ErrUnknownTag
		}
	}
	cp := *article
	r.articles[article.ID] = &cp
	r.removeArticleTags(article.ID)
	for _, id := range tagIDs {
		r.articleTags = append(r.articleTags, models.ArticleTag{ArticleID: article.ID, TagID: id})
	}
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	if _, ok := r.articles[id]; !ok {
		return repositories.ErrArticleNotFound
	}
	r.removeArticleTags(id)
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) IncrementViewCount(id uint) error {
	a, ok := r.articles[id]
	if !ok {
		return repositories.ErrArticleNotFound
	}
	a.ViewCount++
	return nil
}

func (r *fakeArticleRepo) removeArticleTags(articleID uint) {
	kept := r.articleTags[:0]
	for _, at := range r.articleTags {
		if at.ArticleID != articleID {
			kept = append(kept, at)
		}
	}
	r.articleTags = kept
}

func (r *fakeArticleRepo) deleteTag(tagID uint) {
	kept := r.articleTags[:0]
	for _, at := range r.articleTags {
		if at.TagID != tagID {
			kept = append(kept, at)
		}
	}
	r.articleTags = kept
	delete(r.tags, tagID)
}

// fakeTagRepo shares tag and join storage with a fakeArticleRepo so the
// cross-entity cascade semantics can be observed end to end.
type fakeTagRepo struct {
	store *fakeArticleRepo
}

func newFakeTagRepo(store *fakeArticleRepo) *fakeTagRepo {
	return &fakeTagRepo{store: store}
}

func (r *fakeTagRepo) Create(tag *models.Tag) error {
	tag.ID = r.store.nextTagID
	r.store.nextTagID++
	cp := *tag
	r.store.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	tag, ok := r.store.tags[id]
	if !ok {
		return nil, repositories.ErrTagNotFound
	}
	cp := *tag
	return &cp, nil
}

func (r *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	for _, tag := range r.store.tags {
		if tag.Name == name {
			cp := *tag
			return &cp, nil
		}
	}
	return nil, repositories.ErrTagNotFound
}

func (r *fakeTagRepo) GetAll() ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(r.store.tags))
	for _, tag := range r.store.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (r *fakeTagRepo) Update(tag *models.Tag) error {
	if _, ok := r.store.tags[tag.ID]; !ok {
		return repositories.ErrTagNotFound
	}
	cp := *tag
	r.store.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) DeleteWithArticleTags(id uint) error {
	if _, ok := r.store.tags[id]; !ok {
		return repositories.ErrTagNotFound
	}
	r.store.deleteTag(id)
	return nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) GetByArticle(articleID uint, approvedOnly bool) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.ArticleID != articleID {
			continue
		}
		if approvedOnly && !c.IsApproved {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCommentRepo) GetByUser(userID uint) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) GetReplies(parentID uint) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.ParentCommentID != nil && *c.ParentCommentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) HasReplies(id uint) (bool, error) {
	replies, _ := r.GetReplies(id)
	return len(replies) > 0, nil
}

func (r *fakeCommentRepo) Update(comment *models.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return repositories.ErrCommentNotFound
	}
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) Delete(id uint) error {
	if _, ok := r.comments[id]; !ok {
		return repositories.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}
