// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for articles, tags, comments, likes, users
// and sessions. Tag associations are kept consistent by the TagReconciler,
// which always runs inside the transaction of the article write it belongs to.
package persistence
