package runcontrol

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LocalPortKey is the recorded data key under which a ChannelForwarder
// publishes its local port.
const LocalPortKey = "LocalPort"

// ChannelForwarding is implemented by devices whose channels are reachable
// only through a tunnel.
type ChannelForwarding interface {
	ForwardsChannels() bool
}

func needsForwarding(rc *RunControl) bool {
	f, ok := rc.device.(ChannelForwarding)
	return ok && f.ForwardsChannels()
}

// ChannelForwarder tunnels a local TCP port to an endpoint on the device.
type ChannelForwarder struct {
	from func() *url.URL

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	cancel   context.CancelFunc
}

// NewChannelForwarder creates a forwarder whose remote endpoint is asked
// from from when the forwarder starts.
func NewChannelForwarder(from func() *url.URL) *ChannelForwarder {
	return &ChannelForwarder{from: from}
}

// Start listens on a loopback port and records it under LocalPortKey.
func (f *ChannelForwarder) Start(w *Worker) {
	target := f.from()
	if target == nil || target.Port() == "" || target.Port() == "0" {
		w.ReportFailure("No free ports available.")
		return
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrForwardFailed.Error()), "target", target.String())
		w.ReportFailure(err.Error())
		return
	}
	ctx, cancel := context.WithCancel(w.rc.runContext())
	f.mu.Lock()
	f.listener = ln
	f.conns = make(map[net.Conn]struct{})
	f.cancel = cancel
	f.mu.Unlock()

	w.RecordData(LocalPortKey, domain.Port(ln.Addr().(*net.TCPAddr).Port))
	go f.accept(ctx, w, ln, target.Host)
	w.ReportStarted()
}

// Stop closes the listener and all tunnels.
func (f *ChannelForwarder) Stop(w *Worker) {
	f.close()
	w.ReportStopped()
}

func (f *ChannelForwarder) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if f.listener != nil {
		_ = f.listener.Close()
		f.listener = nil
	}
	for c := range f.conns {
		_ = c.Close()
	}
	f.conns = nil
}

func (f *ChannelForwarder) accept(ctx context.Context, w *Worker, ln net.Listener, addr string) {
	for {
		local, err := ln.Accept()
		if err != nil {
			return
		}
		go f.pipe(ctx, w, local, addr)
	}
}

func (f *ChannelForwarder) track(c net.Conn) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conns == nil {
		return false
	}
	f.conns[c] = struct{}{}
	return true
}

func (f *ChannelForwarder) untrack(c net.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.conns, c)
}

func (f *ChannelForwarder) pipe(ctx context.Context, w *Worker, local net.Conn, addr string) {
	defer local.Close()
	remote, err := w.Device().DialContext(ctx, "tcp", addr)
	if err != nil {
		w.AppendMessage(fmt.Sprintf("Cannot forward to %s: %v", addr, err), domain.ErrorMessageFormat)
		return
	}
	defer remote.Close()
	if !f.track(local) || !f.track(remote) {
		return
	}
	defer f.untrack(local)
	defer f.untrack(remote)

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(remote, local)
		_ = remote.Close()
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(local, remote)
		_ = local.Close()
		return err
	})
	_ = g.Wait()
}

// subChannelProvider resolves one channel URL, either from the gatherer
// directly or through a forwarder.
type subChannelProvider struct {
	gatherer  *PortsGatherer
	forwarder *Worker

	mu      sync.Mutex
	channel *url.URL
}

func (s *subChannelProvider) Start(w *Worker) {
	var (
		host = w.Device().ToolControlHost()
		port domain.Port
	)
	if s.forwarder != nil {
		host = "localhost"
		if v, ok := s.forwarder.RecordedData(LocalPortKey); ok {
			port, _ = v.(domain.Port)
		}
	} else {
		port = portOf(s.gatherer.FindEndPoint())
	}
	if port == 0 {
		w.ReportFailure("No free ports available.")
		return
	}
	s.mu.Lock()
	s.channel = domain.EndPoint(host, port)
	s.mu.Unlock()
	w.ReportStarted()
}

func (s *subChannelProvider) Stop(w *Worker) { w.ReportStopped() }

func (s *subChannelProvider) url() *url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.channel == nil {
		return nil
	}
	u := *s.channel
	return &u
}

func portOf(u *url.URL) domain.Port {
	p, _ := strconv.Atoi(u.Port())
	return domain.Port(p)
}

// ChannelProvider hands out the URLs of the debug channels of a run.
type ChannelProvider struct {
	subs []*subChannelProvider
}

// AddChannelProvider adds a worker providing n channels. It starts once every
// channel is resolved; channels come from a shared PortsGatherer and run
// through a ChannelForwarder when the device needs forwarding.
func (rc *RunControl) AddChannelProvider(n int) (*Worker, *ChannelProvider, error) {
	gw, gatherer := rc.AddPortsGatherer()
	p := &ChannelProvider{}
	pw := rc.AddWorker("ChannelProvider", p)

	for range n {
		sub := &subChannelProvider{gatherer: gatherer}
		if needsForwarding(rc) {
			fw := rc.AddWorker("ChannelForwarder", NewChannelForwarder(gatherer.FindEndPoint))
			if err := fw.AddStartDependency(gw); err != nil {
				return nil, nil, err
			}
			sub.forwarder = fw
		}
		sw := rc.AddWorker("SubChannelProvider", sub)
		dep := gw
		if sub.forwarder != nil {
			dep = sub.forwarder
		}
		if err := sw.AddStartDependency(dep); err != nil {
			return nil, nil, err
		}
		if err := pw.AddStartDependency(sw); err != nil {
			return nil, nil, err
		}
		p.subs = append(p.subs, sub)
	}
	return pw, p, nil
}

// Start reports the provider started; its dependencies did the work.
func (p *ChannelProvider) Start(w *Worker) { w.ReportStarted() }

// Stop reports the provider stopped.
func (p *ChannelProvider) Stop(w *Worker) { w.ReportStopped() }

// Channel returns the URL of channel i, or nil if it is not resolved.
func (p *ChannelProvider) Channel(i int) *url.URL {
	if i < 0 || i >= len(p.subs) {
		return nil
	}
	return p.subs[i].url()
}

// Count returns the number of channels.
func (p *ChannelProvider) Count() int { return len(p.subs) }
