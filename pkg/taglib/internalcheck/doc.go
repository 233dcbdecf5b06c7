// Package internalcheck hosts static checks over the taglib packages. It has
// no runtime code; the checks run as tests.
package internalcheck
