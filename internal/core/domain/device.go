package domain

import (
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DesktopDeviceID is the id of the implicit local device.
const DesktopDeviceID = "desktop"

// DeviceType distinguishes local from remote devices.
type DeviceType int

const (
	// DesktopDevice runs processes on the local machine.
	DesktopDevice DeviceType = iota
	// SSHDevice runs processes over an SSH connection.
	SSHDevice
)

// SSHParameters identify a remote connection.
type SSHParameters struct {
	Host    string
	Port    int
	User    string
	KeyFile string
	Timeout time.Duration
}

// Address returns host:port.
func (p SSHParameters) Address() string {
	port := p.Port
	if port == 0 {
		port = 22
	}
	return net.JoinHostPort(p.Host, strconv.Itoa(port))
}

// String renders user@host:port.
func (p SSHParameters) String() string {
	if p.User == "" {
		return p.Address()
	}
	return p.User + "@" + p.Address()
}

// Port is a TCP port number.
type Port int

// IsValid reports whether p is in the usable range.
func (p Port) IsValid() bool {
	return p > 0 && p < 65536
}

// PortList is an ordered set of ports handed out one at a time.
type PortList struct {
	ports []Port
}

// ParsePortList parses a specification like "10000-10100,12000".
func ParsePortList(spec string) (PortList, error) {
	var list PortList
	for part := range strings.SplitSeq(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := parsePort(lo)
		if err != nil {
			return PortList{}, zerr.With(ErrInvalidPortSpec, "spec", spec)
		}
		end := start
		if isRange {
			if end, err = parsePort(hi); err != nil || end < start {
				return PortList{}, zerr.With(ErrInvalidPortSpec, "spec", spec)
			}
		}
		for p := start; p <= end; p++ {
			list.AddPort(p)
		}
	}
	return list, nil
}

func parsePort(s string) (Port, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	p := Port(n)
	if !p.IsValid() {
		return 0, ErrInvalidPortSpec
	}
	return p, nil
}

// AddPort appends p unless it is already present.
func (l *PortList) AddPort(p Port) {
	if !slices.Contains(l.ports, p) {
		l.ports = append(l.ports, p)
	}
}

// Contains reports whether p is part of the list.
func (l PortList) Contains(p Port) bool {
	return slices.Contains(l.ports, p)
}

// HasMore reports whether ports remain.
func (l PortList) HasMore() bool {
	return len(l.ports) > 0
}

// Count returns the number of remaining ports.
func (l PortList) Count() int {
	return len(l.ports)
}

// GetNext removes and returns the first port. It returns 0 when the list is empty.
func (l *PortList) GetNext() Port {
	if len(l.ports) == 0 {
		return 0
	}
	p := l.ports[0]
	l.ports = l.ports[1:]
	return p
}

// Ports returns a copy of the remaining ports.
func (l PortList) Ports() []Port {
	return slices.Clone(l.ports)
}

// String renders the list in its specification form.
func (l PortList) String() string {
	var b strings.Builder
	for i := 0; i < len(l.ports); {
		j := i
		for j+1 < len(l.ports) && l.ports[j+1] == l.ports[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(l.ports[i])))
		if j > i {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(int(l.ports[j])))
		}
		i = j + 1
	}
	return b.String()
}

// EndPoint builds a tcp:// URL for host and port.
func EndPoint(host string, port Port) *url.URL {
	return &url.URL{Scheme: "tcp", Host: net.JoinHostPort(host, strconv.Itoa(int(port)))}
}
