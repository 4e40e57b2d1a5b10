package model

import "strconv"

// Attributed is implemented by resources that can be narrowed by filters.
type Attributed interface {
	// Attribute returns the string value of a filterable attribute.
	Attribute(key string) (string, bool)
}

func providerID(p *CloudProvider) (string, bool) {
	if p == nil {
		return "", false
	}
	return strconv.Itoa(p.Identifier), true
}

func (n *Network) Attribute(key string) (string, bool) {
	switch key {
	case "region":
		return n.Region, true
	case "status":
		return n.Status, true
	case "provider":
		return providerID(n.Provider)
	}
	return "", false
}

func (s *DatabaseServer) Attribute(key string) (string, bool) {
	switch key {
	case "region":
		return s.Region, true
	case "status":
		return s.Status, true
	case "type":
		return s.Type, true
	case "network":
		if s.Network == nil {
			return "", false
		}
		return strconv.Itoa(s.Network.Identifier), true
	}
	return "", false
}

func (c *CacheCluster) Attribute(key string) (string, bool) {
	switch key {
	case "region":
		return c.Region, true
	case "status":
		return c.Status, true
	case "engine":
		return c.Engine, true
	}
	return "", false
}

func (c *Certificate) Attribute(key string) (string, bool) {
	switch key {
	case "region":
		return c.Region, true
	case "status":
		return c.Status, true
	case "provider":
		return providerID(c.Provider)
	}
	return "", false
}

func (z *DnsZone) Attribute(key string) (string, bool) {
	if key == "provider" {
		return providerID(z.Provider)
	}
	return "", false
}

func (e *EmailIdentity) Attribute(key string) (string, bool) {
	switch key {
	case "region":
		return e.Region, true
	case "type":
		return e.Type, true
	case "provider":
		return providerID(e.Provider)
	}
	return "", false
}

func (p *Project) Attribute(key string) (string, bool) {
	switch key {
	case "region":
		return p.Region, true
	case "provider":
		return providerID(p.Provider)
	}
	return "", false
}
