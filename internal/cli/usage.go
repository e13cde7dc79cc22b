package cli

const usageHeader = `
Conductor-backed edge coupled coplanar waveguides calculator

Based on:
Rainee N. Simons "Coplanar waveguide Circuits, Components, and Systems", 2001, Ch. 7.4
Brian C. Wadell "Transmission Line Design Handbook", 1991, Ch. 4.4.3

Usage:
edge_coupled_cpwg [options] d S W t h Er
edge_coupled_cpwg [options] -grid LINES_PATH

Example:
edge_coupled_cpwg 0.2 0.41 0.2 0.035 1.593 4.5

                      / /   /            / /   /            / /   /             
                     / /   /            / /   /            / /   /              
                    / /   /            / /   /            / /   /               
                   / /   /            / /   /            / /   /                
                  / /   /            / /   /            / /   /                 
-----------------+ /   +------------+ /   +------------+ /   +----------------  
  Ground Plane   |/    |   Diff -   |/    |   Diff +   |/    | Ground Plane   }t
-----------------+-----+------------+-----+------------+-----+----------------  
 . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . .  ^ 
. . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . | 
 . . . . . . . . . . . . . . . . .Dielectric . . . . . . . . . . . . . . . .  |h
. . . . . . . . . . . . . . . . . . . Er. . . . . . . . . . . . . . . . . . . | 
 . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . .  | 
. . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . v 
------------------------------------------------------------------------------  
                           G r o u n d   P l a n e                              
                                                                                
                 |     |            |     |            |     |                  
                 |<--->|<---------->|<--->|<---------->|<--->|                  
                    W        S         d         S        W                     

Options must precede the six values.

Options:
`
