package errors

import (
	"errors"
	"reflect"
	"testing"
)

func TestCast(t *testing.T) {
	type args struct {
		err error
	}
	tests := []struct {
		name   string
		args   args
		want   Error
		wantOK bool
	}{
		{
			name: "with rich error",
			args: args{
				err: Error{
					Code:    ErrBadRequest,
					Err:     nil,
					Message: "this was a bad request",
				},
			},
			want: Error{
				Code:    ErrBadRequest,
				Err:     nil,
				Message: "this was a bad request",
			},
			wantOK: true,
		},
		{
			name: "with rich error and original error",
			args: args{
				err: Error{
					Code:    ErrBadRequest,
					Err:     errors.New("i am an error"),
					Message: "this was a bad request",
				},
			},
			want: Error{
				Code:    ErrBadRequest,
				Err:     errors.New("i am an error"),
				Message: "this was a bad request",
			},
			wantOK: true,
		},
		{
			name: "with nil error",
			args: args{
				err: nil,
			},
			want: Error{
				Code:    ErrUnexpected,
				Kind:    KindUnexpected,
				Err:     nil,
				Message: "unknown operation",
				Details: make(Details),
			},
			wantOK: false,
		},
		{
			name: "with native error",
			args: args{
				err: errors.New("i am a native error"),
			},
			want: Error{
				Code:    ErrUnexpected,
				Kind:    KindUnexpected,
				Err:     errors.New("i am a native error"),
				Message: "unknown operation",
				Details: make(Details),
			},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotOK := Cast(tt.args.err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Cast() got = %v, want %v", got, tt.want)
			}
			if gotOK != tt.wantOK {
				t.Errorf("Cast() gotOK = %v, want %v", gotOK, tt.wantOK)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	original := Error{
		Code:    ErrNotFound,
		Kind:    KindGameNotFound,
		Message: "lookup game",
		Details: Details{"game_id": "racing-1"},
	}
	wrapped, ok := Cast(Wrap(original, "handle game request", Details{"venue_id": "venue-a"}))
	if !ok {
		t.Fatal("Wrap() should keep the rich error type")
	}
	if wrapped.Code != ErrNotFound {
		t.Errorf("Wrap() code = %v, want %v", wrapped.Code, ErrNotFound)
	}
	if wrapped.Kind != KindGameNotFound {
		t.Errorf("Wrap() kind = %v, want %v", wrapped.Kind, KindGameNotFound)
	}
	if wrapped.Message != "handle game request: lookup game" {
		t.Errorf("Wrap() message = %v", wrapped.Message)
	}
	if wrapped.Details["game_id"] != "racing-1" {
		t.Error("Wrap() should keep original details")
	}
	if wrapped.Details["venue_id"] != "venue-a" {
		t.Error("Wrap() should add new details")
	}
}

func TestBlameUser(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "bad request", err: Error{Code: ErrBadRequest}, want: true},
		{name: "not found", err: Error{Code: ErrNotFound}, want: true},
		{name: "protocol violation", err: Error{Code: ErrProtocolViolation}, want: true},
		{name: "internal", err: Error{Code: ErrInternal}, want: false},
		{name: "native", err: errors.New("sad life"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlameUser(tt.err); got != tt.want {
				t.Errorf("BlameUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
