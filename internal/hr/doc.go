// Package hr is the placeholder for the HR System domain module.
//
// The intended scope covers employee lifecycle management, payroll
// processing and compliance reporting. None of that is implemented yet;
// this package exists so the module path and version are stable while
// the surrounding scaffold (web application, probes, deployment
// declaration) is put in place.
package hr

// Version is the HR System module version advertised by the scaffold.
const Version = "0.1.0"
