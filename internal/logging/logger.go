// Package logging wires up the zap logger used everywhere else in the
// service.
package logging

import "go.uber.org/zap"

// New builds a production logger in "production" environments and a more
// readable development logger otherwise.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
