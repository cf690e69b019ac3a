// Package libdiff compares exported trees, either line by line on their
// JSON rendering or as JSON merge patches.
package libdiff
