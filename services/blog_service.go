package services

import (
	"context"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// BlogService serves published posts publicly and full CRUD to admins
type BlogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewBlogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *BlogService {
	return &BlogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ListPublished returns published posts newest first. The default first
// page is served from cache when possible.
func (bs *BlogService) ListPublished(ctx context.Context, page, pageSize int) (*database.PaginatedResult[tables.Post], error) {
	cacheable := page == 1 && pageSize == 10
	if cacheable {
		if cached, err := bs.cacheService.GetFirstPostsPage(); err == nil && cached != nil {
			return cached, nil
		}
	}

	query := database.Query[tables.Post](bs.db).
		Where("published", true).
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		bs.logger.Error("Failed to list published posts", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	if cacheable {
		if err := bs.cacheService.CacheFirstPostsPage(result); err != nil {
			bs.logger.Warn("Failed to cache post listing", gecho.Field("error", err))
		}
	}

	return result, nil
}

// GetBySlug returns a published post. Unpublished posts are invisible here.
func (bs *BlogService) GetBySlug(ctx context.Context, slug string) (*tables.Post, error) {
	post, err := database.Query[tables.Post](bs.db).
		Where("slug", slug).
		Where("published", true).
		First(ctx)
	if err != nil {
		bs.logger.Error("Failed to fetch post", gecho.Field("error", err), gecho.Field("slug", slug))
		return nil, lib.MapPgError(err)
	}
	if post == nil {
		return nil, lib.ErrNotFound
	}

	return post, nil
}

// CreatePost inserts a new post. Slug collisions surface as ErrConflict.
func (bs *BlogService) CreatePost(ctx context.Context, req *structs.PostRequest) (*tables.Post, error) {
	post := &tables.Post{
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		Published: req.Published,
	}

	post, err := database.Query[tables.Post](bs.db).Insert(ctx, post)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			bs.logger.Warn("Post creation failed - duplicate slug", gecho.Field("slug", req.Slug))
		} else {
			bs.logger.Error("Failed to create post", gecho.Field("error", mappedErr))
		}
		return nil, mappedErr
	}

	bs.invalidateListings()

	bs.logger.Info("Post created", gecho.Field("post_id", post.Id), gecho.Field("slug", post.Slug))
	return post, nil
}

// UpdatePost applies the full request to an existing post
func (bs *BlogService) UpdatePost(ctx context.Context, id uuid.UUID, req *structs.PostRequest) (*tables.Post, error) {
	updates := map[string]any{
		"title":      req.Title,
		"slug":       req.Slug,
		"body":       req.Body,
		"published":  req.Published,
		"updated_at": time.Now(),
	}

	affected, err := database.Query[tables.Post](bs.db).
		Where("id", id).
		Update(ctx, updates)
	if err != nil {
		bs.logger.Error("Failed to update post", gecho.Field("error", err), gecho.Field("post_id", id))
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	bs.invalidateListings()

	post, err := database.Query[tables.Post](bs.db).Where("id", id).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	bs.logger.Info("Post updated", gecho.Field("post_id", id))
	return post, nil
}

// DeletePost removes a post permanently
func (bs *BlogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Query[tables.Post](bs.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		bs.logger.Error("Failed to delete post", gecho.Field("error", err), gecho.Field("post_id", id))
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	bs.invalidateListings()

	bs.logger.Info("Post deleted", gecho.Field("post_id", id))
	return nil
}

// CountPosts returns the total post count, optionally published only
func (bs *BlogService) CountPosts(ctx context.Context, publishedOnly bool) (int, error) {
	query := database.Query[tables.Post](bs.db)
	if publishedOnly {
		query = query.Where("published", true)
	}

	count, err := query.Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}

func (bs *BlogService) invalidateListings() {
	if err := bs.cacheService.InvalidatePostCaches(); err != nil {
		bs.logger.Warn("Failed to invalidate post caches", gecho.Field("error", err))
	}
}
