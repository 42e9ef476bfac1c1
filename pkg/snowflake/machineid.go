package snowflake

import "net"

// interfaceMachineID derives a machine id from the hardware address of the
// host's first non-loopback interface carrying an IPv4 address, masked to
// max. Hosts without such an interface get 0. Enumeration failures also fall
// back to 0; construction must not fail on a hostname-only container.
func interfaceMachineID(max int64) int64 {
	ifaces, err := net.Interfaces()
	if err != nil {
		return 0
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
			continue
		}
		if !hasIPv4(iface) {
			continue
		}
		var v int64
		for _, b := range iface.HardwareAddr {
			v = v<<8 | int64(b)
		}
		return v & max
	}
	return 0
}

func hasIPv4(iface net.Interface) bool {
	addrs, err := iface.Addrs()
	if err != nil {
		return false
	}
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
			return true
		}
	}
	return false
}
