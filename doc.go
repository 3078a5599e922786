// Module-query (`module-query`) is a command line query tool for the cluster
// applications database. It works like `module spider`: searching for a build
// name prints either the full detail for a single match, including the
// `module load` incantation and run time dependencies, or a consolidated
// report grouped by application when several builds match. A companion binary
// (`check-activation`) fetches the stored activation commands and verifies
// each one still works.
package modulequery
