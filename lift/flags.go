package lift

import "github.com/sarchlab/shlift/il"

// Flag synthesis for 32-bit add/sub results. Each flag is a boolean
// formula over the sign bits of the operands and the result only; no
// carry chain is simulated.

// AddCarry builds the carry-out predicate for res = x + y:
// (s(x)&s(y)) | (!s(res)&s(y)) | (s(x)&!s(res)).
func AddCarry(res, x, y il.Pure) il.Pure {
	xmsb := il.MSB(x)
	ymsb := il.MSB(y)
	resmsb := il.MSB(res)

	xy := il.BAnd(xmsb, ymsb)
	nres := il.BNot(resmsb)

	ry := il.BAnd(nres, ymsb.Dup())
	xr := il.BAnd(xmsb.Dup(), nres.Dup())

	return il.BOr(il.BOr(xy, ry), xr)
}

// AddOverflow builds the signed-overflow predicate for res = x + y:
// (!s(res)&s(x)&s(y)) | (s(res)&!s(x)&!s(y)).
func AddOverflow(res, x, y il.Pure) il.Pure {
	xmsb := il.MSB(x)
	ymsb := il.MSB(y)
	resmsb := il.MSB(res)

	nrxy := il.BAnd(il.BAnd(il.BNot(resmsb), xmsb), ymsb)
	rnxny := il.BAnd(il.BAnd(resmsb.Dup(), il.BNot(xmsb.Dup())), il.BNot(ymsb.Dup()))

	return il.BOr(nrxy, rnxny)
}

// SubBorrow builds the borrow predicate for res = x - y:
// (!s(x)&s(y)) | (s(y)&s(res)) | (s(res)&!s(x)).
func SubBorrow(res, x, y il.Pure) il.Pure {
	xmsb := il.MSB(x)
	ymsb := il.MSB(y)
	resmsb := il.MSB(res)

	nx := il.BNot(xmsb)
	nxy := il.BAnd(nx, ymsb)

	rny := il.BAnd(ymsb.Dup(), resmsb)
	rnx := il.BAnd(resmsb.Dup(), nx.Dup())

	return il.BOr(il.BOr(nxy, rny), rnx)
}

// SubUnderflow builds the signed-underflow predicate for res = x - y:
// (!s(res)&s(x)&!s(y)) | (s(res)&!s(x)&s(y)).
func SubUnderflow(res, x, y il.Pure) il.Pure {
	xmsb := il.MSB(x)
	ymsb := il.MSB(y)
	resmsb := il.MSB(res)

	nrxny := il.BAnd(il.BAnd(il.BNot(resmsb), xmsb), il.BNot(ymsb))
	rnxy := il.BAnd(il.BAnd(resmsb.Dup(), il.BNot(xmsb.Dup())), ymsb.Dup())

	return il.BOr(nrxny, rnxy)
}
