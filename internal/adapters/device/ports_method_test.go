package device_test

import (
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/device"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProcNetMethod_UsedPorts(t *testing.T) {
	output := "  sl\n" +
		"0050\n" +
		"1F90\n" +
		"0050\n" +
		"zzzz\n" +
		"12345\n" +
		"0000\n"

	got := device.ProcNetMethod{}.UsedPorts([]byte(output))

	assert.Equal(t, []domain.Port{80, 8080}, got)
}

func TestProcNetMethod_Runnable(t *testing.T) {
	r := device.ProcNetMethod{}.Runnable()

	assert.Equal(t, "sh", r.Executable)
	assert.Contains(t, r.Arguments[1], "/proc/net/tcp*")
}

func TestNetstatMethod_UsedPorts(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []domain.Port
	}{
		{
			name: "linux",
			output: "Active Internet connections (servers and established)\n" +
				"Proto Recv-Q Send-Q Local Address           Foreign Address         State\n" +
				"tcp        0      0 0.0.0.0:22              0.0.0.0:*               LISTEN\n" +
				"tcp6       0      0 :::8080                 :::*                    LISTEN\n",
			want: []domain.Port{22, 8080},
		},
		{
			name: "macos",
			output: "Proto Recv-Q Send-Q  Local Address          Foreign Address        (state)\n" +
				"tcp4       0      0  127.0.0.1.631          *.*                    LISTEN\n" +
				"tcp46      0      0  *.5000                 *.*                    LISTEN\n",
			want: []domain.Port{631, 5000},
		},
		{
			name: "windows",
			output: "Active Connections\n\n" +
				"  Proto  Local Address          Foreign Address        State\n" +
				"  TCP    0.0.0.0:135            0.0.0.0:0              LISTENING\n" +
				"  TCP    [::]:445               [::]:0                 LISTENING\n",
			want: []domain.Port{135, 445},
		},
		{
			name:   "garbage",
			output: "nothing to see\ntcp\n",
			want:   []domain.Port{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := device.NetstatMethod{}.UsedPorts([]byte(tt.output))
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
