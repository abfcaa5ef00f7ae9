// Package articles defines the article, tag, comment and like domain: entities,
// input validation, paging cursors and the repository/service contracts
// implemented by the persistence and application layers.
package articles
