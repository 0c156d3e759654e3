package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleCustomer        Role = "Customer"
	RoleEnterpriseAdmin Role = "EnterpriseAdmin"
	RoleSystemAdmin     Role = "SystemAdmin"
	RoleShipper         Role = "Shipper"
)

func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "customer":
		return RoleCustomer, nil
	case "enterpriseadmin", "enterprise_admin":
		return RoleEnterpriseAdmin, nil
	case "systemadmin", "system_admin", "admin":
		return RoleSystemAdmin, nil
	case "shipper":
		return RoleShipper, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
}
