package network

import (
	"context"
	"net"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProbe(t *testing.T) {
	Convey("Given a probe built from a base URL", t, func() {
		Convey("https defaults to port 443", func() {
			p, err := NewProbe("https://api.jikan.moe/v4", time.Second, false)
			So(err, ShouldBeNil)
			So(p.Address, ShouldEqual, "api.jikan.moe:443")
		})

		Convey("http defaults to port 80", func() {
			p, err := NewProbe("http://localhost/v4", time.Second, false)
			So(err, ShouldBeNil)
			So(p.Address, ShouldEqual, "localhost:80")
		})

		Convey("an explicit port wins", func() {
			p, err := NewProbe("http://127.0.0.1:8080", time.Second, false)
			So(err, ShouldBeNil)
			So(p.Address, ShouldEqual, "127.0.0.1:8080")
		})
	})

	Convey("Given a listening socket", t, func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		defer ln.Close()

		go func() {
			for {
				c, err := ln.Accept()
				if err != nil {
					return
				}
				_ = c.Close()
			}
		}()

		p := &Probe{Address: ln.Addr().String(), Timeout: time.Second}

		Convey("the probe reports online", func() {
			So(p.Online(context.Background()), ShouldBeTrue)
		})

		Convey("forced offline never dials", func() {
			dialed := false
			p.Offline = true
			p.dial = func(ctx context.Context, network, address string) (net.Conn, error) {
				dialed = true
				return nil, nil
			}
			So(p.Online(context.Background()), ShouldBeFalse)
			So(dialed, ShouldBeFalse)
		})
	})

	Convey("Given a dial that fails", t, func() {
		p := &Probe{Address: "example.invalid:443", dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			return nil, &net.OpError{Op: "dial", Net: network, Err: &net.DNSError{Err: "no such host", Name: "example.invalid"}}
		}}

		So(p.Online(context.Background()), ShouldBeFalse)
	})

	Convey("CheckerFunc adapts a function", t, func() {
		var c Checker = CheckerFunc(func(context.Context) bool { return true })
		So(c.Online(context.Background()), ShouldBeTrue)
	})
}
