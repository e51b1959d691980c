package grpclib

import (
	"fmt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"runtime/debug"
)

// RecoveryHandlerFunc converts a panic into an Internal error
func RecoveryHandlerFunc(p interface{}) error {
	fmt.Println("[PANIC]", p)
	fmt.Println(string(debug.Stack()))
	return status.Errorf(codes.Internal, "panic: %v", p)
}
