/*
Package cli implements one-shot dispatch.

Dispatcher.Run takes the program arguments and returns an exit status:

  - no arguments start the interactive shell when the application allows it;
  - help, -h and --help print usage and return 1;
  - config prints the settings and config:set changes one;
  - anything else is resolved, parsed and invoked. A boolean result maps to
    0 (true) or 1 (false); other results return 0.

Unknown commands print usage and return 1. An unhandled command error is
returned alongside status 1.
*/
package cli
