package ports

import "context"

type EmergencyDialer interface {
	Dial(ctx context.Context, number string) error
}
