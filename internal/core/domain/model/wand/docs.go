// Package wand implements the Wand inventory record: availability status plus
// the reservation that binds a wand to the order that claimed it.
package wand
