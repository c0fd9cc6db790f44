/*Package aut provides the discrete abstract time used for turn ordering.

An aut is a tenth of an ordinary turn: a plain step or attack costs Turn, a
long action such as meditating costs LongTurn. Every actor carries the Time of
its next turn; the scheduler always picks the smallest one. aut is unrelated
to wall-clock or animation time, which is counted in float seconds.

*/
package aut
