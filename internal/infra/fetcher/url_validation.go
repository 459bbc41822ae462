package fetcher

import (
	"fmt"
	"net"
	"net/url"

	"article-digest/internal/usecase/summarize"
)

// validateURL validates a URL for security before making an HTTP request.
// It prevents Server-Side Request Forgery (SSRF) by restricting schemes to
// http/https and, when denyPrivateIPs is set, resolving DNS and rejecting
// hostnames that point at loopback, private or link-local addresses.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", summarize.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", summarize.ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", summarize.ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", summarize.ErrInvalidURL, hostname, err)
	}

	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to private IP %s",
				summarize.ErrInvalidURL, hostname, ip.String())
		}
	}

	return nil
}

// isPrivateIP checks if an IP address is in a private, loopback or
// link-local range. Supports both IPv4 and IPv6.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
