// Package bootstrap builds the object graph shared by the server and CLI entry points:
// database connection, repositories, credential primitives, services and the access gate.
package bootstrap
