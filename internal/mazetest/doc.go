// Package mazetest provides reference pipe mazes with known answers for
// tests across the module.
package mazetest
