package persistence

import (
	"context"
	"fmt"
	"sort"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReconcileResult lists the tag names touched by one reconciliation
type ReconcileResult struct {
	Added   []string // associations inserted
	Removed []string // associations deleted
	Created []string // tag rows inserted
	Swept   []string // tag rows deleted because nothing references them any more
}

// Changed reports whether the article's tag set was modified
func (r *ReconcileResult) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// TagReconciler brings an article's tag associations in line with a desired name set.
// It never opens a transaction itself; callers pass the handle of the transaction
// that also writes the article row.
type TagReconciler struct {
	logger logger.Logger
}

// NewTagReconciler creates a TagReconciler
func NewTagReconciler(logger logger.Logger) *TagReconciler {
	return &TagReconciler{logger: logger}
}

type tagRow struct {
	ID   int64
	Name string
}

// Reconcile makes the article reference exactly the desired tags.
// An empty desired set removes every association, as done on article deletion.
func (r *TagReconciler) Reconcile(ctx context.Context, tx *gorm.DB, articleID int64, desired []string) (*ReconcileResult, error) {
	tx = tx.WithContext(ctx)
	desired = articles.NormalizeTags(desired)

	current, err := r.current(tx, articleID)
	if err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(desired))
	for _, name := range desired {
		want[name] = struct{}{}
	}

	result := &ReconcileResult{}
	var removedIDs []int64
	for name, id := range current {
		if _, ok := want[name]; !ok {
			result.Removed = append(result.Removed, name)
			removedIDs = append(removedIDs, id)
		}
	}
	for _, name := range desired {
		if _, ok := current[name]; !ok {
			result.Added = append(result.Added, name)
		}
	}
	sort.Strings(result.Removed)

	if len(result.Added) > 0 {
		ids, created, err := r.ensureTags(tx, result.Added)
		if err != nil {
			return nil, err
		}
		result.Created = created

		links := make([]models.ArticleTagModel, 0, len(result.Added))
		for _, name := range result.Added {
			links = append(links, models.ArticleTagModel{ArticleID: articleID, TagID: ids[name]})
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
			return nil, fmt.Errorf("failed to associate tags with article %d: %w", articleID, err)
		}
	}

	if len(removedIDs) > 0 {
		if err := tx.Where("article_id = ? AND tag_id IN ?", articleID, removedIDs).
			Delete(&models.ArticleTagModel{}).Error; err != nil {
			return nil, fmt.Errorf("failed to remove tags from article %d: %w", articleID, err)
		}

		swept, err := r.sweep(tx, removedIDs, current)
		if err != nil {
			return nil, err
		}
		result.Swept = swept
	}

	if result.Changed() {
		r.logger.Debug(fmt.Sprintf("Reconciled tags of article %d: added=%v removed=%v created=%v swept=%v",
			articleID, result.Added, result.Removed, result.Created, result.Swept))
	}
	return result, nil
}

// current returns the article's tags keyed by name
func (r *TagReconciler) current(tx *gorm.DB, articleID int64) (map[string]int64, error) {
	var rows []tagRow
	err := tx.Table("article_tags").
		Select("tags.id AS id, tags.name AS name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id = ?", articleID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read tags of article %d: %w", articleID, err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Name] = row.ID
	}
	return out, nil
}

// ensureTags inserts missing tag rows and returns the id of every name.
// Rows inserted concurrently by another writer are reused through ON CONFLICT DO NOTHING.
// Every returned row is share-locked until the transaction ends, so a concurrent
// sweep cannot delete a tag this transaction is about to reference.
func (r *TagReconciler) ensureTags(tx *gorm.DB, names []string) (map[string]int64, []string, error) {
	existing, err := r.idsByName(tx, names)
	if err != nil {
		return nil, nil, err
	}

	var missing []models.TagModel
	var created []string
	for _, name := range names {
		if _, ok := existing[name]; !ok {
			missing = append(missing, models.TagModel{Name: name})
			created = append(created, name)
		}
	}
	if len(missing) == 0 {
		return existing, nil, nil
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&missing).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert tags: %w", err)
	}

	ids, err := r.idsByName(tx, names)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range names {
		if _, ok := ids[name]; !ok {
			return nil, nil, fmt.Errorf("tag %q missing after insert", name)
		}
	}
	return ids, created, nil
}

func (r *TagReconciler) idsByName(tx *gorm.DB, names []string) (map[string]int64, error) {
	var tags []models.TagModel
	query := tx.Where("name IN ?", names).Order("id")
	if rowLocking(tx) {
		query = query.Clauses(clause.Locking{Strength: "SHARE"})
	}
	if err := query.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	out := make(map[string]int64, len(tags))
	for _, tag := range tags {
		out[tag.Name] = tag.ID
	}
	return out, nil
}

// rowLocking reports whether the dialect supports SELECT ... FOR SHARE/UPDATE.
// SQLite serialises writers on the database file instead.
func rowLocking(tx *gorm.DB) bool {
	return tx.Dialector.Name() == "postgres"
}

// sweep deletes the given tags unless another article still references them.
// The candidates are locked first, which waits out writers that share-locked them
// in ensureTags; the delete then runs on a snapshot that sees their associations.
func (r *TagReconciler) sweep(tx *gorm.DB, tagIDs []int64, names map[string]int64) ([]string, error) {
	if rowLocking(tx) {
		var locked []int64
		err := tx.Model(&models.TagModel{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", tagIDs).
			Order("id").
			Pluck("id", &locked).Error
		if err != nil {
			return nil, fmt.Errorf("failed to lock tags: %w", err)
		}
	}

	err := tx.Exec(
		"DELETE FROM tags WHERE id IN ? AND NOT EXISTS (SELECT 1 FROM article_tags WHERE article_tags.tag_id = tags.id)",
		tagIDs,
	).Error
	if err != nil {
		return nil, fmt.Errorf("failed to delete orphan tags: %w", err)
	}

	var survivors []int64
	if err := tx.Model(&models.TagModel{}).Where("id IN ?", tagIDs).Pluck("id", &survivors).Error; err != nil {
		return nil, fmt.Errorf("failed to read remaining tags: %w", err)
	}
	alive := make(map[int64]struct{}, len(survivors))
	for _, id := range survivors {
		alive[id] = struct{}{}
	}

	var swept []string
	for name, id := range names {
		if _, ok := alive[id]; ok {
			continue
		}
		for _, removed := range tagIDs {
			if removed == id {
				swept = append(swept, name)
				break
			}
		}
	}
	sort.Strings(swept)
	return swept, nil
}
