package curry

// Curry2 converts a binary function into a chain of two unary functions.
// fn is invoked once, after the second argument has been supplied.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 converts a function of 3 arguments into a chain of unary functions.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Curry4 converts a function of 4 arguments into a chain of unary functions.
func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return fn(a, b, c, d)
				}
			}
		}
	}
}

// Curry5 converts a function of 5 arguments into a chain of unary functions.
func Curry5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) func(D) func(E) R {
		return func(b B) func(C) func(D) func(E) R {
			return func(c C) func(D) func(E) R {
				return func(d D) func(E) R {
					return func(e E) R {
						return fn(a, b, c, d, e)
					}
				}
			}
		}
	}
}

// Curry6 converts a function of 6 arguments into a chain of unary functions.
func Curry6[A, B, C, D, E, F, R any](fn func(A, B, C, D, E, F) R) func(A) func(B) func(C) func(D) func(E) func(F) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) func(D) func(E) func(F) R {
		return func(b B) func(C) func(D) func(E) func(F) R {
			return func(c C) func(D) func(E) func(F) R {
				return func(d D) func(E) func(F) R {
					return func(e E) func(F) R {
						return func(f F) R {
							return fn(a, b, c, d, e, f)
						}
					}
				}
			}
		}
	}
}

// Curry7 converts a function of 7 arguments into a chain of unary functions.
func Curry7[A, B, C, D, E, F, G, R any](fn func(A, B, C, D, E, F, G) R) func(A) func(B) func(C) func(D) func(E) func(F) func(G) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) R {
			return func(c C) func(D) func(E) func(F) func(G) R {
				return func(d D) func(E) func(F) func(G) R {
					return func(e E) func(F) func(G) R {
						return func(f F) func(G) R {
							return func(g G) R {
								return fn(a, b, c, d, e, f, g)
							}
						}
					}
				}
			}
		}
	}
}

// Curry8 converts a function of 8 arguments into a chain of unary functions.
func Curry8[A, B, C, D, E, F, G, H, R any](fn func(A, B, C, D, E, F, G, H) R) func(A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) func(H) R {
			return func(c C) func(D) func(E) func(F) func(G) func(H) R {
				return func(d D) func(E) func(F) func(G) func(H) R {
					return func(e E) func(F) func(G) func(H) R {
						return func(f F) func(G) func(H) R {
							return func(g G) func(H) R {
								return func(h H) R {
									return fn(a, b, c, d, e, f, g, h)
								}
							}
						}
					}
				}
			}
		}
	}
}

// Curry9 converts a function of 9 arguments into a chain of unary functions.
func Curry9[A, B, C, D, E, F, G, H, I, R any](fn func(A, B, C, D, E, F, G, H, I) R) func(A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) func(I) R {
	if fn == nil {
		return nil
	}
	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) func(I) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) func(H) func(I) R {
			return func(c C) func(D) func(E) func(F) func(G) func(H) func(I) R {
				return func(d D) func(E) func(F) func(G) func(H) func(I) R {
					return func(e E) func(F) func(G) func(H) func(I) R {
						return func(f F) func(G) func(H) func(I) R {
							return func(g G) func(H) func(I) R {
								return func(h H) func(I) R {
									return func(i I) R {
										return fn(a, b, c, d, e, f, g, h, i)
									}
								}
							}
						}
					}
				}
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Uncurry3 collapses a curried chain of 3 unary functions back into one function.
func Uncurry3[A, B, C, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}

// Uncurry4 collapses a curried chain of 4 unary functions back into one function.
func Uncurry4[A, B, C, D, R any](fn func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C, d D) R {
		return fn(a)(b)(c)(d)
	}
}

// Uncurry5 collapses a curried chain of 5 unary functions back into one function.
func Uncurry5[A, B, C, D, E, R any](fn func(A) func(B) func(C) func(D) func(E) R) func(A, B, C, D, E) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C, d D, e E) R {
		return fn(a)(b)(c)(d)(e)
	}
}

// Uncurry6 collapses a curried chain of 6 unary functions back into one function.
func Uncurry6[A, B, C, D, E, F, R any](fn func(A) func(B) func(C) func(D) func(E) func(F) R) func(A, B, C, D, E, F) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C, d D, e E, f F) R {
		return fn(a)(b)(c)(d)(e)(f)
	}
}

// Uncurry7 collapses a curried chain of 7 unary functions back into one function.
func Uncurry7[A, B, C, D, E, F, G, R any](fn func(A) func(B) func(C) func(D) func(E) func(F) func(G) R) func(A, B, C, D, E, F, G) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C, d D, e E, f F, g G) R {
		return fn(a)(b)(c)(d)(e)(f)(g)
	}
}

// Uncurry8 collapses a curried chain of 8 unary functions back into one function.
func Uncurry8[A, B, C, D, E, F, G, H, R any](fn func(A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R) func(A, B, C, D, E, F, G, H) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C, d D, e E, f F, g G, h H) R {
		return fn(a)(b)(c)(d)(e)(f)(g)(h)
	}
}

// Uncurry9 collapses a curried chain of 9 unary functions back into one function.
func Uncurry9[A, B, C, D, E, F, G, H, I, R any](fn func(A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) func(I) R) func(A, B, C, D, E, F, G, H, I) R {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C, d D, e E, f F, g G, h H, i I) R {
		return fn(a)(b)(c)(d)(e)(f)(g)(h)(i)
	}
}
