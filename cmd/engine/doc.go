// Command engine composes an engine from configuration and prints its description.
//
// Configuration is layered: an optional config file (.hcl, .yaml or .yml) is
// read first, then environment variables named <prefix><Key> override it.
// Required keys are TireCount and PistonCount; ConnectionString and Url are
// optional.
//
// Usage
//
//	engine [-config engine.hcl] [-env-prefix ENGINE_] [-log-level info] [-log-format text] [-out file]
//
// Example
//
//	$ ENGINE_TireCount=4 ENGINE_PistonCount=6 engine
//	Pistons: ||||||
//	Tires: ()()()()
//	Engine is ready!
//
// With -out the description is written atomically to the given file and only
// the readiness line is printed.
//
// Exit codes: 0 success, 1 configuration or composition failure, 2 usage error.
package main
