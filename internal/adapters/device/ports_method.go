package device

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var (
	_ ports.PortsGatheringMethod = ProcNetMethod{}
	_ ports.PortsGatheringMethod = NetstatMethod{}
)

// ProcNetMethod lists used ports from /proc/net/tcp and /proc/net/tcp6.
type ProcNetMethod struct{}

// Runnable prints the hexadecimal local port of every socket, one per line.
func (ProcNetMethod) Runnable() domain.Runnable {
	return domain.Runnable{
		Executable: "sh",
		Arguments: []string{
			"-c",
			`sed -e 's/.*: [[:xdigit:]]*:\([[:xdigit:]]\{4\}\).*/\1/g' /proc/net/tcp* 2>/dev/null`,
		},
	}
}

// UsedPorts parses the output of Runnable.
func (ProcNetMethod) UsedPorts(output []byte) []domain.Port {
	var list domain.PortList
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) != 4 {
			continue
		}
		n, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			continue
		}
		if p := domain.Port(n); p.IsValid() {
			list.AddPort(p)
		}
	}
	return list.Ports()
}

// NetstatMethod lists used ports with netstat, for systems without /proc.
type NetstatMethod struct{}

// Runnable runs netstat without name resolution.
func (NetstatMethod) Runnable() domain.Runnable {
	return domain.Runnable{Executable: "netstat", Arguments: []string{"-a", "-n"}}
}

// UsedPorts parses "addr:port" and BSD style "addr.port" local addresses.
func (NetstatMethod) UsedPorts(output []byte) []domain.Port {
	var list domain.PortList
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		proto := strings.ToLower(fields[0])
		if !strings.HasPrefix(proto, "tcp") && !strings.HasPrefix(proto, "udp") {
			continue
		}
		local := localAddress(fields)
		i := strings.LastIndexAny(local, ":.")
		if i < 0 {
			continue
		}
		n, err := strconv.Atoi(local[i+1:])
		if err != nil {
			continue
		}
		if p := domain.Port(n); p.IsValid() {
			list.AddPort(p)
		}
	}
	return list.Ports()
}

func localAddress(fields []string) string {
	// Windows has no queue columns, so the local address comes second.
	if strings.ContainsAny(fields[1], ":.") {
		return fields[1]
	}
	if len(fields) >= 4 {
		return fields[3]
	}
	return ""
}
